package stark

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
)

// StatementHash computes SHA-256(canonical JSON of statement) mod p.
// encoding/json.Marshal on a map[string]interface{} already sorts keys
// recursively and emits no extraneous whitespace, so it satisfies the
// canonical-JSON requirement without custom serialization code.
func StatementHash(field *core.Field, statement map[string]interface{}) (*core.FieldElement, error) {
	canonical, err := json.Marshal(statement)
	if err != nil {
		return nil, fmt.Errorf("stark: marshaling statement: %w", err)
	}
	digest := sha256.Sum256(canonical)
	return field.NewElement(new(big.Int).SetBytes(digest[:])), nil
}

// secretValueKeys are the witness fields the prover checks, in order, when
// deriving the trace seed: "secret_value" first, falling back to the
// looser aliases "age" and "value" for witnesses shaped like the ones the
// original implementation accepted.
var secretValueKeys = []string{"secret_value", "age", "value"}

// DeriveTraceSeed extracts the witness's secret value and reduces it mod
// p: a numeric value is taken directly mod p; a string one is SHA-256'd
// first. If none of secretValueKeys is present, the whole witness object
// is canonically marshaled and SHA-256'd instead.
func DeriveTraceSeed(field *core.Field, witness map[string]interface{}) (*core.FieldElement, error) {
	var raw interface{}
	found := false
	for _, key := range secretValueKeys {
		if v, ok := witness[key]; ok {
			raw, found = v, true
			break
		}
	}
	if found {
		switch v := raw.(type) {
		case float64:
			return field.NewElement(big.NewInt(int64(v))), nil
		case int:
			return field.NewElement(big.NewInt(int64(v))), nil
		case int64:
			return field.NewElement(big.NewInt(v)), nil
		case json.Number:
			n, ok := new(big.Int).SetString(v.String(), 10)
			if !ok {
				return nil, fmt.Errorf("stark: secret_value %q is not an integer", v.String())
			}
			return field.NewElement(n), nil
		case string:
			digest := sha256.Sum256([]byte(v))
			return field.NewElement(new(big.Int).SetBytes(digest[:])), nil
		default:
			return nil, fmt.Errorf("stark: secret_value must be numeric or string")
		}
	}

	canonical, err := json.Marshal(witness)
	if err != nil {
		return nil, fmt.Errorf("stark: marshaling witness: %w", err)
	}
	digest := sha256.Sum256(canonical)
	return field.NewElement(new(big.Int).SetBytes(digest[:])), nil
}
