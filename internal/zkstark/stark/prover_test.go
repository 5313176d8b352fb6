package stark

import (
	"math/big"
	"testing"
)

func smallConfig() *Config {
	return DefaultConfig().
		WithTraceLength(16).
		WithBlowupFactor(4).
		WithNumQueries(6).
		WithNumFRILayers(3)
}

func fixedClock() int64 { return 1700000000 }

func TestProveVerifyRoundTrip(t *testing.T) {
	statement := map[string]interface{}{"claim": "knows a trace seed"}
	witness := map[string]interface{}{"secret_value": float64(7)}

	proof, err := Prove(statement, witness, smallConfig(), fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	ok, err := Verify(proof, statement, smallConfig())
	if err != nil {
		t.Fatalf("Verify returned an error on a valid proof: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected a valid proof")
	}
}

func TestProveIsDeterministic(t *testing.T) {
	statement := map[string]interface{}{"claim": "determinism check"}
	witness := map[string]interface{}{"secret_value": float64(3)}
	config := smallConfig()

	p1, err := Prove(statement, witness, config, fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p2, err := Prove(statement, witness, config, fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if p1.TraceRoot != p2.TraceRoot {
		t.Fatal("identical statement/witness/config produced different trace roots")
	}
	if p1.StatementHash != p2.StatementHash {
		t.Fatal("identical statement/witness/config produced different statement hashes")
	}
	if len(p1.FinalPolynomial) != len(p2.FinalPolynomial) {
		t.Fatal("identical statement/witness/config produced final polynomials of different length")
	}
}

func TestVerifyRejectsMismatchedStatement(t *testing.T) {
	statement := map[string]interface{}{"claim": "original"}
	witness := map[string]interface{}{"secret_value": float64(11)}
	config := smallConfig()

	proof, err := Prove(statement, witness, config, fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	wrongStatement := map[string]interface{}{"claim": "different"}
	ok, err := Verify(proof, wrongStatement, config)
	if err == nil || ok {
		t.Fatal("verification unexpectedly succeeded against a different statement")
	}
}

func TestVerifyRejectsTamperedTraceRoot(t *testing.T) {
	statement := map[string]interface{}{"claim": "tamper check"}
	witness := map[string]interface{}{"secret_value": float64(4)}
	config := smallConfig()

	proof, err := Prove(statement, witness, config, fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	proof.TraceRoot = "00" + proof.TraceRoot[2:]
	ok, _ := Verify(proof, statement, config)
	if ok {
		t.Fatal("verification unexpectedly succeeded against a tampered trace root")
	}
}

func TestVerifyRejectsTamperedFinalPolynomial(t *testing.T) {
	statement := map[string]interface{}{"claim": "final polynomial tamper check"}
	witness := map[string]interface{}{"secret_value": float64(6)}
	config := smallConfig()

	proof, err := Prove(statement, witness, config, fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if len(proof.FinalPolynomial) == 0 {
		t.Fatal("expected a non-empty final polynomial")
	}
	v, ok := new(big.Int).SetString(proof.FinalPolynomial[0], 10)
	if !ok {
		t.Fatalf("malformed final polynomial coefficient %q", proof.FinalPolynomial[0])
	}
	proof.FinalPolynomial[0] = v.Add(v, big.NewInt(1)).String()

	ok2, _ := Verify(proof, statement, config)
	if ok2 {
		t.Fatal("verification unexpectedly succeeded against a tampered final polynomial")
	}
}

func TestVerifyRejectsTruncatedQueries(t *testing.T) {
	statement := map[string]interface{}{"claim": "truncation check"}
	witness := map[string]interface{}{"secret_value": float64(9)}
	config := smallConfig()

	proof, err := Prove(statement, witness, config, fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	proof.Queries = proof.Queries[:1]
	ok, err := Verify(proof, statement, config)
	if err == nil || ok {
		t.Fatal("verification unexpectedly succeeded with most query responses missing")
	}
}

func TestProveRejectsInconsistentConfig(t *testing.T) {
	statement := map[string]interface{}{}
	witness := map[string]interface{}{}
	bad := smallConfig().WithTraceLength(17)
	if _, err := Prove(statement, witness, bad, fixedClock); err == nil {
		t.Fatal("expected an error for a non-power-of-two trace length")
	}
}

func TestProveWithGrindingVerifies(t *testing.T) {
	statement := map[string]interface{}{"claim": "grinding check"}
	witness := map[string]interface{}{"secret_value": float64(21)}
	config := smallConfig().WithGrindingBits(8)

	proof, err := Prove(statement, witness, config, fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	ok, err := Verify(proof, statement, config)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected a valid ground proof")
	}
}

func TestPublicOutputIsLastTraceCell(t *testing.T) {
	statement := map[string]interface{}{"claim": "public output check"}
	witness := map[string]interface{}{"secret_value": float64(2)}
	config := smallConfig()

	proof, err := Prove(statement, witness, config, fixedClock)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	field, _ := config.Field()
	seed, err := DeriveTraceSeed(field, witness)
	if err != nil {
		t.Fatalf("DeriveTraceSeed: %v", err)
	}
	expected := seed.Add(field.NewElementFromInt64(int64(config.TraceLength - 1)))
	if proof.PublicOutput != expected.Big().String() {
		t.Fatalf("public output %s does not match seed+%d", proof.PublicOutput, config.TraceLength-1)
	}
}
