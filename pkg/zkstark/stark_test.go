package zkstark

import (
	"errors"
	"testing"
)

func smallConfig() *Config {
	return DefaultConfig().
		WithTraceLength(16).
		WithBlowupFactor(4).
		WithNumQueries(6).
		WithNumFRILayers(3)
}

func TestGenerateAndVerifyProof(t *testing.T) {
	statement := Statement{"claim": "public API round trip"}
	witness := Witness{"secret_value": float64(13)}
	config := smallConfig()

	proof, err := GenerateProof(statement, witness, config)
	if err != nil {
		t.Fatalf("GenerateProof: %v", err)
	}
	ok, err := VerifyProof(proof, statement, config)
	if err != nil {
		t.Fatalf("VerifyProof: %v", err)
	}
	if !ok {
		t.Fatal("VerifyProof rejected a valid proof")
	}
}

func TestVerifyProofWrapsErrorKind(t *testing.T) {
	statement := Statement{"claim": "error kind check"}
	witness := Witness{"secret_value": float64(1)}
	config := smallConfig()

	proof, err := GenerateProof(statement, witness, config)
	if err != nil {
		t.Fatalf("GenerateProof: %v", err)
	}
	_, err = VerifyProof(proof, Statement{"claim": "different"}, config)
	if err == nil {
		t.Fatal("expected an error verifying against a mismatched statement")
	}
	var se *StarkError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *StarkError, got %T", err)
	}
	if se.Code != ErrBindingFailure {
		t.Fatalf("expected ErrBindingFailure, got %s", se.Code)
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	bad := DefaultConfig().WithTraceLength(100)
	if _, err := NewEngine(bad); err == nil {
		t.Fatal("expected an error for an invalid configuration")
	}
}
