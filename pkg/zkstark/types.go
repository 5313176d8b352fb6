package zkstark

import (
	"math/big"

	"github.com/vybium/zk-stark-engine/internal/zkstark/stark"
)

// Statement is the public claim a proof attests to: arbitrary JSON-shaped
// data, canonically hashed and bound into the transcript.
type Statement = map[string]interface{}

// Witness is the prover's private input. Its "secret_value" key (or, failing
// that, "age" and then "value"), if present, seeds the execution trace;
// otherwise the whole witness is hashed to derive the seed.
type Witness = map[string]interface{}

// Proof is the complete, self-contained non-interactive transcript: a
// trace commitment, the FRI folding transcript, and opened queries.
type Proof = stark.Proof

// Config tunes a proof's size and security parameters.
type Config = stark.Config

// DefaultConfig returns the engine's default parameters: a 256-step trace,
// blowup factor 4, 80 queries over 10 FRI layers, no grinding, over the
// Goldilocks field.
func DefaultConfig() *Config {
	return stark.DefaultConfig()
}

// GoldilocksModulus returns p = 2^64 - 2^32 + 1, the field every default
// configuration runs over.
func GoldilocksModulus() *big.Int {
	return stark.DefaultConfig().FieldModulus
}
