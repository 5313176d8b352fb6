// Command zkstark-cli exposes the engine's generate-proof and verify-proof
// operations as subcommands, kept bit-compatible with the JSON schema the
// engine's external collaborators already depend on.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/vybium/zk-stark-engine/pkg/zkstark"
)

func main() {
	if len(os.Args) < 2 {
		fatal("generate-proof", fmt.Errorf("expected a subcommand: generate-proof or verify-proof"))
	}

	switch os.Args[1] {
	case "generate-proof":
		runGenerateProof(os.Args[2:])
	case "verify-proof":
		runVerifyProof(os.Args[2:])
	default:
		fatal(os.Args[1], fmt.Errorf("unknown subcommand %q", os.Args[1]))
	}
}

func runGenerateProof(args []string) {
	fs := flag.NewFlagSet("generate-proof", flag.ExitOnError)
	proofType := fs.String("proof-type", "successor", "proof type tag")
	statementJSON := fs.String("statement", "{}", "statement as a JSON object")
	witnessJSON := fs.String("witness", "{}", "witness as a JSON object")
	fs.Parse(args)

	var statement, witness map[string]interface{}
	if err := json.Unmarshal([]byte(*statementJSON), &statement); err != nil {
		failGenerate(*proofType, fmt.Errorf("parsing --statement: %w", err))
		return
	}
	if err := json.Unmarshal([]byte(*witnessJSON), &witness); err != nil {
		failGenerate(*proofType, fmt.Errorf("parsing --witness: %w", err))
		return
	}

	config := zkstark.DefaultConfig()
	engine, err := zkstark.NewEngine(config)
	if err != nil {
		failGenerate(*proofType, err)
		return
	}

	proof, err := engine.GenerateProof(statement, witness)
	if err != nil {
		failGenerate(*proofType, err)
		return
	}

	verified, err := engine.VerifyProof(proof, statement)
	if err != nil {
		verified = false
	}

	emit(map[string]interface{}{
		"success":          true,
		"proof":            proof,
		"verified":         verified,
		"proof_type":       *proofType,
		"protocol":         "zkstark-engine/v1",
		"cuda_accelerated": false,
	})
}

func runVerifyProof(args []string) {
	fs := flag.NewFlagSet("verify-proof", flag.ExitOnError)
	proofJSON := fs.String("proof", "", "proof as a JSON object")
	statementJSON := fs.String("statement", "{}", "statement as a JSON object")
	fs.Parse(args)

	var proof zkstark.Proof
	if err := json.Unmarshal([]byte(*proofJSON), &proof); err != nil {
		failVerify(fmt.Errorf("parsing --proof: %w", err))
		return
	}
	var statement map[string]interface{}
	if err := json.Unmarshal([]byte(*statementJSON), &statement); err != nil {
		failVerify(fmt.Errorf("parsing --statement: %w", err))
		return
	}

	config := zkstark.DefaultConfig()
	engine, err := zkstark.NewEngine(config)
	if err != nil {
		failVerify(err)
		return
	}

	verified, err := engine.VerifyProof(&proof, statement)
	if err != nil {
		failVerify(err)
		return
	}

	emit(map[string]interface{}{
		"success":          true,
		"verified":         verified,
		"protocol":         "zkstark-engine/v1",
		"cuda_accelerated": false,
	})
}

func failGenerate(proofType string, err error) {
	emit(map[string]interface{}{
		"success":    false,
		"proof_type": proofType,
		"protocol":   "zkstark-engine/v1",
		"error":      err.Error(),
		"error_type": errorType(err),
	})
	os.Exit(1)
}

func failVerify(err error) {
	emit(map[string]interface{}{
		"success":    false,
		"protocol":   "zkstark-engine/v1",
		"error":      err.Error(),
		"error_type": errorType(err),
	})
	os.Exit(1)
}

func errorType(err error) string {
	var se *zkstark.StarkError
	if ok := asStarkError(err, &se); ok {
		return se.Code.String()
	}
	return "unknown"
}

func asStarkError(err error, target **zkstark.StarkError) bool {
	se, ok := err.(*zkstark.StarkError)
	if !ok {
		return false
	}
	*target = se
	return true
}

func emit(v map[string]interface{}) {
	out, err := json.Marshal(v)
	if err != nil {
		fatal("", err)
	}
	fmt.Println(string(out))
}

func fatal(subcommand string, err error) {
	fmt.Fprintf(os.Stderr, "zkstark-cli %s: %v\n", subcommand, err)
	os.Exit(1)
}
