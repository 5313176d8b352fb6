package stark

import (
	"encoding/hex"

	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
	"github.com/vybium/zk-stark-engine/internal/zkstark/fri"
)

// OpeningView is the JSON-serializable form of a single FRI layer opening.
type OpeningView struct {
	EvenIndex int      `json:"even_index"`
	EvenValue string   `json:"even_value"`
	EvenProof []string `json:"even_proof"`
	OddValue  string   `json:"odd_value"`
	OddProof  []string `json:"odd_proof"`
}

// QueryView is one query's worth of per-layer openings.
type QueryView struct {
	Index  int           `json:"index"`
	Layers []OpeningView `json:"layers"`
}

// Proof is the complete non-interactive transcript a prover emits and a
// verifier checks: everything needed to check a STARK statement without
// further interaction. Field integers wider than 53 bits are carried as
// decimal strings, and Merkle roots/digests as lowercase hex, so the proof
// round-trips through JSON without precision loss.
type Proof struct {
	ProtocolTag string `json:"protocol"`

	TraceLength    int `json:"trace_length"`
	ExtendedLength int `json:"extended_length"`
	BlowupFactor   int `json:"blowup_factor"`

	TraceRoot  string   `json:"trace_commitment_root"`
	FRIRoots   []string `json:"fri_roots"`
	Challenges []string `json:"fri_challenges"`

	FinalPolynomial []string `json:"final_polynomial"`

	Queries []QueryView `json:"queries"`

	FieldPrime   string `json:"field_prime"`
	SecurityBits int    `json:"security_bits"`

	StatementHash string `json:"statement_hash"`
	PublicOutput  string `json:"public_output"`

	GeneratedAtUnix int64 `json:"generated_at_unix"`

	GrindingNonce uint64 `json:"grinding_nonce,omitempty"`
}

func rootHex(root [32]byte) string {
	return hex.EncodeToString(root[:])
}

func decodeRootHex(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return out, errMalformedProof("invalid root hex: " + s)
	}
	copy(out[:], raw)
	return out, nil
}

func encodeOpening(op fri.Opening) OpeningView {
	return OpeningView{
		EvenIndex: op.EvenIndex,
		EvenValue: op.EvenValue.Big().String(),
		EvenProof: encodeProofNodes(op.EvenProof),
		OddValue:  op.OddValue.Big().String(),
		OddProof:  encodeProofNodes(op.OddProof),
	}
}

func encodeProofNodes(nodes []core.ProofNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		tag := "L"
		if n.IsRight {
			tag = "R"
		}
		out[i] = tag + hex.EncodeToString(n.Hash[:])
	}
	return out
}

func decodeProofNodes(encoded []string) ([]core.ProofNode, error) {
	out := make([]core.ProofNode, len(encoded))
	for i, e := range encoded {
		if len(e) < 1 {
			return nil, errMalformedProof("empty proof node")
		}
		raw, err := hex.DecodeString(e[1:])
		if err != nil {
			return nil, errMalformedProof("proof node hex: " + err.Error())
		}
		var h [32]byte
		copy(h[:], raw)
		out[i] = core.ProofNode{Hash: h, IsRight: e[0] == 'R'}
	}
	return out, nil
}

type malformedProofError string

func (e malformedProofError) Error() string { return string(e) }

func errMalformedProof(msg string) error { return malformedProofError(msg) }
