package stark

import "testing"

func TestStatementHashDeterministicUnderKeyReordering(t *testing.T) {
	f := DefaultConfig()
	field, err := f.Field()
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	a := map[string]interface{}{"b": 2, "a": 1}
	b := map[string]interface{}{"a": 1, "b": 2}

	ha, err := StatementHash(field, a)
	if err != nil {
		t.Fatalf("StatementHash: %v", err)
	}
	hb, err := StatementHash(field, b)
	if err != nil {
		t.Fatalf("StatementHash: %v", err)
	}
	if !ha.Equal(hb) {
		t.Fatal("statement hash depends on Go map key order, not canonical JSON")
	}
}

func TestDeriveTraceSeedFromNumericSecret(t *testing.T) {
	field, _ := DefaultConfig().Field()
	witness := map[string]interface{}{"secret_value": float64(42)}
	seed, err := DeriveTraceSeed(field, witness)
	if err != nil {
		t.Fatalf("DeriveTraceSeed: %v", err)
	}
	if !seed.Equal(field.NewElementFromInt64(42)) {
		t.Fatalf("expected seed 42, got %s", seed)
	}
}

func TestDeriveTraceSeedFallsBackToWholeWitness(t *testing.T) {
	field, _ := DefaultConfig().Field()
	w1 := map[string]interface{}{"other_field": "x"}
	w2 := map[string]interface{}{"other_field": "y"}
	s1, err := DeriveTraceSeed(field, w1)
	if err != nil {
		t.Fatalf("DeriveTraceSeed: %v", err)
	}
	s2, err := DeriveTraceSeed(field, w2)
	if err != nil {
		t.Fatalf("DeriveTraceSeed: %v", err)
	}
	if s1.Equal(s2) {
		t.Fatal("different witnesses produced the same derived seed")
	}
}
