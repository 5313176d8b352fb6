package core

import (
	"fmt"
	"math/big"
	"strings"
)

// mulSchoolbookThreshold bounds the product of operand lengths below which
// Mul uses the schoolbook algorithm instead of zero-padding to a power of
// two and going through NTT/INTT.
const mulSchoolbookThreshold = 4096

// Polynomial is a dense univariate polynomial over a Field, coefficient
// index 0 = constant term. Immutable after construction; every operation
// returns a new value. Canonical form strips trailing zero coefficients,
// except the zero polynomial, which is represented as a single zero.
type Polynomial struct {
	coefficients []*FieldElement
	field        *Field
}

// Point is an (x, y) pair used for interpolation.
type Point struct {
	X *FieldElement
	Y *FieldElement
}

// NewPolynomial builds a polynomial from a coefficient vector, trimming
// trailing zeros.
func NewPolynomial(coefficients []*FieldElement) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("core: polynomial must have at least one coefficient")
	}

	field := coefficients[0].Field()
	for i, c := range coefficients {
		if !c.Field().Equals(field) {
			return nil, fmt.Errorf("core: coefficient %d is from a different field", i)
		}
	}

	trimmed := coefficients
	for len(trimmed) > 1 && trimmed[len(trimmed)-1].IsZero() {
		trimmed = trimmed[:len(trimmed)-1]
	}

	out := make([]*FieldElement, len(trimmed))
	copy(out, trimmed)
	return &Polynomial{coefficients: out, field: field}, nil
}

// NewPolynomialFromInt64 builds a polynomial from int64 coefficients.
func NewPolynomialFromInt64(field *Field, coefficients []int64) (*Polynomial, error) {
	fc := make([]*FieldElement, len(coefficients))
	for i, c := range coefficients {
		fc[i] = field.NewElementFromInt64(c)
	}
	return NewPolynomial(fc)
}

// Degree returns len(coefficients)-1.
func (p *Polynomial) Degree() int { return len(p.coefficients) - 1 }

// Field returns the polynomial's field.
func (p *Polynomial) Field() *Field { return p.field }

// Coefficient returns the coefficient at the given degree, zero if out of range.
func (p *Polynomial) Coefficient(degree int) *FieldElement {
	if degree < 0 || degree >= len(p.coefficients) {
		return p.field.Zero()
	}
	return p.coefficients[degree]
}

// LeadingCoefficient returns the highest-degree coefficient.
func (p *Polynomial) LeadingCoefficient() *FieldElement {
	return p.coefficients[len(p.coefficients)-1]
}

// Coefficients returns a copy of the coefficient vector.
func (p *Polynomial) Coefficients() []*FieldElement {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// IsZero reports whether this is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coefficients) == 1 && p.coefficients[0].IsZero()
}

// Eval evaluates the polynomial at a point using Horner's rule, Θ(degree).
func (p *Polynomial) Eval(point *FieldElement) *FieldElement {
	if !point.Field().Equals(p.field) {
		panic("core: evaluation point from a different field")
	}
	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(point).Add(p.coefficients[i])
	}
	return result
}

// EvalDomain evaluates the polynomial over every point of domain. When the
// domain is the canonical order-n subgroup in natural order and n is a power
// of two at least Degree()+1, it zero-pads the coefficients and uses the
// forward NTT; otherwise (including any coset or reordered domain) it falls
// back to pointwise Horner evaluation.
func (p *Polynomial) EvalDomain(domain []*FieldElement) ([]*FieldElement, error) {
	n := len(domain)
	if IsPowerOfTwo(n) && n >= len(p.coefficients) {
		if isSubgroupDomain(p.field, domain, n) {
			padded := make([]*FieldElement, n)
			copy(padded, p.coefficients)
			for i := len(p.coefficients); i < n; i++ {
				padded[i] = p.field.Zero()
			}
			return p.field.NTT(padded)
		}
	}
	out := make([]*FieldElement, n)
	for i, x := range domain {
		out[i] = p.Eval(x)
	}
	return out, nil
}

// isSubgroupDomain reports whether domain matches the canonical order-n
// subgroup (no coset offset), the only shape the NTT fast path handles.
func isSubgroupDomain(f *Field, domain []*FieldElement, n int) bool {
	canonical, err := f.Domain(n)
	if err != nil {
		return false
	}
	for i := range domain {
		if !domain[i].Equal(canonical[i]) {
			return false
		}
	}
	return true
}

// Add returns p + other, extending to the longer length.
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("core: cannot add polynomials from different fields")
	}
	maxDeg := maxInt(p.Degree(), other.Degree())
	out := make([]*FieldElement, maxDeg+1)
	for i := 0; i <= maxDeg; i++ {
		out[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}
	return NewPolynomial(out)
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("core: cannot subtract polynomials from different fields")
	}
	maxDeg := maxInt(p.Degree(), other.Degree())
	out := make([]*FieldElement, maxDeg+1)
	for i := 0; i <= maxDeg; i++ {
		out[i] = p.Coefficient(i).Sub(other.Coefficient(i))
	}
	return NewPolynomial(out)
}

// MulScalar returns p scaled by a constant.
func (p *Polynomial) MulScalar(scalar *FieldElement) (*Polynomial, error) {
	if !scalar.Field().Equals(p.field) {
		return nil, fmt.Errorf("core: scalar from a different field")
	}
	out := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Mul(scalar)
	}
	return NewPolynomial(out)
}

// Mul returns p * other, choosing schoolbook or NTT convolution by size.
func (p *Polynomial) Mul(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("core: cannot multiply polynomials from different fields")
	}
	if p.IsZero() || other.IsZero() {
		return NewPolynomial([]*FieldElement{p.field.Zero()})
	}

	if len(p.coefficients)*len(other.coefficients) < mulSchoolbookThreshold {
		return p.mulSchoolbook(other)
	}
	return p.mulNTT(other)
}

func (p *Polynomial) mulSchoolbook(other *Polynomial) (*Polynomial, error) {
	out := make([]*FieldElement, p.Degree()+other.Degree()+1)
	for i := range out {
		out[i] = p.field.Zero()
	}
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewPolynomial(out)
}

func (p *Polynomial) mulNTT(other *Polynomial) (*Polynomial, error) {
	resultLen := len(p.coefficients) + len(other.coefficients) - 1
	n := NextPowerOfTwo(resultLen)

	a := padTo(p.field, p.coefficients, n)
	b := padTo(p.field, other.coefficients, n)

	fa, err := p.field.NTT(a)
	if err != nil {
		return nil, err
	}
	fb, err := p.field.NTT(b)
	if err != nil {
		return nil, err
	}

	pointwise := make([]*FieldElement, n)
	for i := range pointwise {
		pointwise[i] = fa[i].Mul(fb[i])
	}

	coeffs, err := p.field.INTT(pointwise)
	if err != nil {
		return nil, err
	}
	return NewPolynomial(coeffs[:resultLen])
}

func padTo(f *Field, coeffs []*FieldElement, n int) []*FieldElement {
	out := make([]*FieldElement, n)
	copy(out, coeffs)
	for i := len(coeffs); i < n; i++ {
		out[i] = f.Zero()
	}
	return out
}

// Pow raises the polynomial to a non-negative power via square-and-multiply.
func (p *Polynomial) Pow(exponent *big.Int) (*Polynomial, error) {
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("core: negative exponents not supported")
	}
	result, err := NewPolynomial([]*FieldElement{p.field.One()})
	if err != nil {
		return nil, err
	}
	base := p
	exp := new(big.Int).Set(exponent)
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			result, err = result.Mul(base)
			if err != nil {
				return nil, err
			}
		}
		base, err = base.Mul(base)
		if err != nil {
			return nil, err
		}
		exp.Rsh(exp, 1)
	}
	return result, nil
}

// Compose returns p(other(x)).
func (p *Polynomial) Compose(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("core: cannot compose polynomials from different fields")
	}
	result, err := NewPolynomial([]*FieldElement{p.field.Zero()})
	if err != nil {
		return nil, err
	}
	power, err := NewPolynomial([]*FieldElement{p.field.One()})
	if err != nil {
		return nil, err
	}
	for i, coeff := range p.coefficients {
		if i > 0 {
			power, err = power.Mul(other)
			if err != nil {
				return nil, err
			}
		}
		term, err := power.MulScalar(coeff)
		if err != nil {
			return nil, err
		}
		result, err = result.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Div performs polynomial long division, returning quotient and remainder.
func (p *Polynomial) Div(other *Polynomial) (*Polynomial, *Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, nil, fmt.Errorf("core: cannot divide polynomials from different fields")
	}
	if other.IsZero() {
		return nil, nil, fmt.Errorf("core: division by the zero polynomial: %w", ErrDivisionByZero)
	}
	if other.Degree() > p.Degree() {
		zero, err := NewPolynomial([]*FieldElement{p.field.Zero()})
		if err != nil {
			return nil, nil, err
		}
		return zero, p.Clone(), nil
	}

	quotient := make([]*FieldElement, p.Degree()-other.Degree()+1)
	for i := range quotient {
		quotient[i] = p.field.Zero()
	}
	remainder := make([]*FieldElement, len(p.coefficients))
	copy(remainder, p.coefficients)
	leadingOther := other.LeadingCoefficient()

	for i := len(quotient) - 1; i >= 0; i-- {
		if len(remainder) <= other.Degree() {
			break
		}
		leadingRem := remainder[len(remainder)-1]
		q, err := leadingRem.Div(leadingOther)
		if err != nil {
			return nil, nil, fmt.Errorf("core: division failed: %w", err)
		}
		quotient[len(remainder)-1-other.Degree()] = q

		for j := 0; j <= other.Degree(); j++ {
			idx := len(remainder) - other.Degree() + j - 1
			if idx >= 0 && idx < len(remainder) {
				remainder[idx] = remainder[idx].Sub(q.Mul(other.Coefficient(j)))
			}
		}
		for len(remainder) > 0 && remainder[len(remainder)-1].IsZero() {
			remainder = remainder[:len(remainder)-1]
		}
	}

	qPoly, err := NewPolynomial(quotient)
	if err != nil {
		return nil, nil, err
	}
	var rPoly *Polynomial
	if len(remainder) == 0 {
		rPoly, err = NewPolynomial([]*FieldElement{p.field.Zero()})
	} else {
		rPoly, err = NewPolynomial(remainder)
	}
	if err != nil {
		return nil, nil, err
	}
	return qPoly, rPoly, nil
}

// Clone returns an independent copy.
func (p *Polynomial) Clone() *Polynomial {
	clone, err := NewPolynomial(p.Coefficients())
	if err != nil {
		panic("core: failed to clone polynomial: " + err.Error())
	}
	return clone
}

// String renders the polynomial in descending-degree form.
func (p *Polynomial) String() string {
	if p.Degree() == 0 {
		return p.coefficients[0].String()
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		coeff := p.Coefficient(i)
		if coeff.IsZero() {
			continue
		}
		var term string
		switch {
		case i == 0:
			term = coeff.String()
		case i == 1:
			if coeff.IsOne() {
				term = "x"
			} else {
				term = coeff.String() + "x"
			}
		default:
			if coeff.IsOne() {
				term = fmt.Sprintf("x^%d", i)
			} else {
				term = fmt.Sprintf("%sx^%d", coeff.String(), i)
			}
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// LagrangeInterpolation interpolates the unique minimal-degree polynomial
// through points, requiring distinct x-coordinates.
func LagrangeInterpolation(points []Point, field *Field) (*Polynomial, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("core: need at least one point for interpolation")
	}
	for i, pt := range points {
		if !pt.X.Field().Equals(field) || !pt.Y.Field().Equals(field) {
			return nil, fmt.Errorf("core: point %d is from a different field", i)
		}
	}

	result, err := NewPolynomial([]*FieldElement{field.Zero()})
	if err != nil {
		return nil, err
	}

	for i, pt := range points {
		basis, err := NewPolynomial([]*FieldElement{field.One()})
		if err != nil {
			return nil, err
		}
		for j, other := range points {
			if i == j {
				continue
			}
			denom := pt.X.Sub(other.X)
			if denom.IsZero() {
				return nil, fmt.Errorf("core: duplicate x-coordinates found")
			}
			invDenom, err := field.One().Div(denom)
			if err != nil {
				return nil, err
			}

			numerator, err := NewPolynomialFromInt64(field, []int64{0, 1})
			if err != nil {
				return nil, err
			}
			constant, err := NewPolynomial([]*FieldElement{other.X})
			if err != nil {
				return nil, err
			}
			numerator, err = numerator.Sub(constant)
			if err != nil {
				return nil, err
			}
			numerator, err = numerator.MulScalar(invDenom)
			if err != nil {
				return nil, err
			}
			basis, err = basis.Mul(numerator)
			if err != nil {
				return nil, err
			}
		}
		term, err := basis.MulScalar(pt.Y)
		if err != nil {
			return nil, err
		}
		result, err = result.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// InterpolateFromSubgroupEvaluations recovers a polynomial's coefficients
// from its evaluations on the canonical order-n subgroup via inverse-NTT.
// This is the mandated fast path wherever the evaluation domain is
// FFT-compatible, replacing the slower general Lagrange interpolation.
func InterpolateFromSubgroupEvaluations(field *Field, evaluations []*FieldElement) (*Polynomial, error) {
	coeffs, err := field.INTT(evaluations)
	if err != nil {
		return nil, err
	}
	return NewPolynomial(coeffs)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
