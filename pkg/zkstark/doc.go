// Package zkstark provides a non-interactive zero-knowledge STARK proving
// and verification engine over the Goldilocks field.
//
// # Features
//
// - Complete STARK prover and verifier for a fixed successor-relation AIR
// - FRI low-degree proximity protocol with coefficient-level folding
// - SHA-256 Merkle commitments, Fiat-Shamir transcript, optional grinding
// - Pluggable batch-arithmetic backend for field operations
//
// # Quick Start
//
// Generating and verifying a proof:
//
//	config := zkstark.DefaultConfig()
//	statement := map[string]interface{}{"claim": "knows a secret trace seed"}
//	witness := map[string]interface{}{"secret_value": 42}
//
//	proof, err := zkstark.GenerateProof(statement, witness, config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ok, err := zkstark.VerifyProof(proof, statement, config)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		fmt.Println("Proof is valid!")
//	}
//
// # Architecture
//
// zkstark uses a hybrid public/private architecture:
//
// - pkg/zkstark/: Public API (this package)
// - internal/zkstark/: Private implementation (not importable)
//
// The public API is stable; implementation details in internal/ can be
// refactored without breaking it.
//
// # Non-goals
//
// This engine does not implement a general constraint DSL, proof
// recursion/aggregation, a succinct verifier below O(log^2 n), any
// specific RPC transport, or persistent proof storage. Those concerns
// belong to the systems embedding it.
//
// # References
//
// - STARK Paper: https://eprint.iacr.org/2018/046
// - FRI Paper: https://eccc.weizmann.ac.il/report/2017/134/
package zkstark
