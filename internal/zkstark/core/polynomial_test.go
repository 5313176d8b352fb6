package core

import "testing"

func TestPolynomialEvalHorner(t *testing.T) {
	f := NewGoldilocksField()
	// p(x) = 1 + 2x + 3x^2
	p, err := NewPolynomialFromInt64(f, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewPolynomialFromInt64: %v", err)
	}
	x := f.NewElementFromInt64(5)
	got := p.Eval(x)
	want := f.NewElementFromInt64(1 + 2*5 + 3*25)
	if !got.Equal(want) {
		t.Fatalf("Eval(5) = %s, want %s", got, want)
	}
}

func TestPolynomialEvalDomainMatchesHorner(t *testing.T) {
	f := NewGoldilocksField()
	p, err := NewPolynomialFromInt64(f, []int64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("NewPolynomialFromInt64: %v", err)
	}
	domain, err := f.Domain(8)
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	fast, err := p.EvalDomain(domain)
	if err != nil {
		t.Fatalf("EvalDomain: %v", err)
	}
	for i, x := range domain {
		if !fast[i].Equal(p.Eval(x)) {
			t.Fatalf("EvalDomain mismatch at %d", i)
		}
	}
}

func TestPolynomialMulSchoolbookVsNTTAgree(t *testing.T) {
	f := NewGoldilocksField()
	a, _ := NewPolynomialFromInt64(f, []int64{1, 2, 3})
	b, _ := NewPolynomialFromInt64(f, []int64{4, 5, 6})

	viaSchoolbook, err := a.mulSchoolbook(b)
	if err != nil {
		t.Fatalf("mulSchoolbook: %v", err)
	}
	viaNTT, err := a.mulNTT(b)
	if err != nil {
		t.Fatalf("mulNTT: %v", err)
	}
	if viaSchoolbook.Degree() != viaNTT.Degree() {
		t.Fatalf("degree mismatch: %d vs %d", viaSchoolbook.Degree(), viaNTT.Degree())
	}
	for i := 0; i <= viaSchoolbook.Degree(); i++ {
		if !viaSchoolbook.Coefficient(i).Equal(viaNTT.Coefficient(i)) {
			t.Fatalf("coefficient %d mismatch", i)
		}
	}
}

func TestInterpolateFromSubgroupEvaluationsRoundTrip(t *testing.T) {
	f := NewGoldilocksField()
	p, err := NewPolynomialFromInt64(f, []int64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewPolynomialFromInt64: %v", err)
	}
	domain, err := f.Domain(4)
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	evals, err := p.EvalDomain(domain)
	if err != nil {
		t.Fatalf("EvalDomain: %v", err)
	}
	recovered, err := InterpolateFromSubgroupEvaluations(f, evals)
	if err != nil {
		t.Fatalf("InterpolateFromSubgroupEvaluations: %v", err)
	}
	for i := 0; i <= p.Degree(); i++ {
		if !recovered.Coefficient(i).Equal(p.Coefficient(i)) {
			t.Fatalf("coefficient %d mismatch: got %s, want %s", i, recovered.Coefficient(i), p.Coefficient(i))
		}
	}
}

func TestPolynomialDivByZeroErrors(t *testing.T) {
	f := NewGoldilocksField()
	p, _ := NewPolynomialFromInt64(f, []int64{1, 2})
	zero, _ := NewPolynomialFromInt64(f, []int64{0})
	if _, _, err := p.Div(zero); err == nil {
		t.Fatal("expected an error dividing by the zero polynomial")
	}
}

func TestLagrangeInterpolationRejectsDuplicateX(t *testing.T) {
	f := NewGoldilocksField()
	x := f.NewElementFromInt64(3)
	points := []Point{
		{X: x, Y: f.NewElementFromInt64(1)},
		{X: x, Y: f.NewElementFromInt64(2)},
	}
	if _, err := LagrangeInterpolation(points, f); err == nil {
		t.Fatal("expected an error for duplicate x-coordinates")
	}
}
