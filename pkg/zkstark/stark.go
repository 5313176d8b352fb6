package zkstark

import (
	"fmt"

	"github.com/vybium/zk-stark-engine/internal/zkstark/stark"
)

// Engine binds a Config to the Prove/Verify pipeline, mirroring the way a
// single configuration produces many proofs and verifies many others.
type Engine struct {
	config *Config
}

// NewEngine validates config and builds an Engine around it.
func NewEngine(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, wrapError(fmt.Errorf("%w: %s", stark.ErrInvalidInput, err))
	}
	return &Engine{config: config.Clone()}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config { return e.config }

// GenerateProof runs the prover over statement and witness.
func (e *Engine) GenerateProof(statement Statement, witness Witness) (*Proof, error) {
	proof, err := stark.Prove(statement, witness, e.config, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return proof, nil
}

// VerifyProof checks proof against statement.
func (e *Engine) VerifyProof(proof *Proof, statement Statement) (bool, error) {
	ok, err := stark.Verify(proof, statement, e.config)
	if err != nil {
		return false, wrapError(err)
	}
	return ok, nil
}

// GenerateProof is a package-level convenience wrapping NewEngine+GenerateProof.
func GenerateProof(statement Statement, witness Witness, config *Config) (*Proof, error) {
	engine, err := NewEngine(config)
	if err != nil {
		return nil, err
	}
	return engine.GenerateProof(statement, witness)
}

// VerifyProof is a package-level convenience wrapping NewEngine+VerifyProof.
func VerifyProof(proof *Proof, statement Statement, config *Config) (bool, error) {
	engine, err := NewEngine(config)
	if err != nil {
		return false, err
	}
	return engine.VerifyProof(proof, statement)
}
