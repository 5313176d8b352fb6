// Package stark orchestrates Field, Polynomial, MerkleTree, AIR and FRI
// into the end-to-end non-interactive STARK prover and verifier, along
// with the Fiat-Shamir transcript and configuration that bind them.
package stark

import (
	"fmt"
	"math/big"

	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
)

// Config is the public STARKConfig parameter record: everything that tunes
// a proof. All other configuration (transport, CLI flags) is the caller's
// problem.
type Config struct {
	FieldModulus *big.Int
	Generator    *big.Int

	TraceLength  int // T, must be a power of two
	BlowupFactor int // b, rate rho = 1/b
	NumQueries   int // q
	NumFRILayers int // L

	GrindingBits int // gamma, 0 disables proof-of-work grinding
	SecurityBits int

	// HashFunction selects the Fiat-Shamir channel's own bookkeeping hash
	// ("sha256", the default, or "sha3"). It never touches the protocol's
	// SHA-256-mandated commitments (Merkle leaves, FRI query indices, the
	// statement hash, grinding).
	HashFunction string
}

// DefaultConfig matches the sizes used by the engine's example scenarios:
// a 256-step trace, blowup 4, 80 queries spread over 10 FRI layers, no
// grinding, over the Goldilocks field.
func DefaultConfig() *Config {
	return &Config{
		FieldModulus: core.GoldilocksModulus(),
		Generator:    big.NewInt(core.GoldilocksGenerator),
		TraceLength:  256,
		BlowupFactor: 4,
		NumQueries:   80,
		NumFRILayers: 10,
		GrindingBits: 0,
		SecurityBits: 100,
		HashFunction: "sha256",
	}
}

// Validate checks the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.FieldModulus == nil || c.FieldModulus.Cmp(big.NewInt(2)) <= 0 {
		return fmt.Errorf("field modulus must be greater than 2")
	}
	if !core.IsPowerOfTwo(c.TraceLength) {
		return fmt.Errorf("trace length %d must be a power of two", c.TraceLength)
	}
	if c.BlowupFactor <= 1 || !core.IsPowerOfTwo(c.BlowupFactor) {
		return fmt.Errorf("blowup factor %d must be a power of two greater than 1", c.BlowupFactor)
	}
	if c.NumQueries <= 0 {
		return fmt.Errorf("num queries must be positive")
	}
	if c.NumFRILayers <= 0 {
		return fmt.Errorf("num FRI layers must be positive")
	}
	if c.GrindingBits < 0 {
		return fmt.Errorf("grinding bits must be non-negative")
	}
	if c.HashFunction != "sha256" && c.HashFunction != "sha3" {
		return fmt.Errorf("hash function must be 'sha256' or 'sha3', got %q", c.HashFunction)
	}
	return nil
}

// WithTraceLength sets T.
func (c *Config) WithTraceLength(length int) *Config { c.TraceLength = length; return c }

// WithBlowupFactor sets b.
func (c *Config) WithBlowupFactor(b int) *Config { c.BlowupFactor = b; return c }

// WithNumQueries sets q.
func (c *Config) WithNumQueries(q int) *Config { c.NumQueries = q; return c }

// WithNumFRILayers sets L.
func (c *Config) WithNumFRILayers(l int) *Config { c.NumFRILayers = l; return c }

// WithGrindingBits sets gamma.
func (c *Config) WithGrindingBits(bits int) *Config { c.GrindingBits = bits; return c }

// WithHashFunction sets the channel's bookkeeping hash.
func (c *Config) WithHashFunction(name string) *Config { c.HashFunction = name; return c }

// ExtendedLength returns T * b, the size of the low-degree-extension domain.
func (c *Config) ExtendedLength() int { return c.TraceLength * c.BlowupFactor }

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	return &Config{
		FieldModulus: new(big.Int).Set(c.FieldModulus),
		Generator:    new(big.Int).Set(c.Generator),
		TraceLength:  c.TraceLength,
		BlowupFactor: c.BlowupFactor,
		NumQueries:   c.NumQueries,
		NumFRILayers: c.NumFRILayers,
		GrindingBits: c.GrindingBits,
		SecurityBits: c.SecurityBits,
		HashFunction: c.HashFunction,
	}
}

// Field builds the Field this configuration's proofs run over.
func (c *Config) Field() (*core.Field, error) {
	return core.NewField(c.FieldModulus, c.Generator)
}
