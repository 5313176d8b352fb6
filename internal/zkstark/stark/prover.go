package stark

import (
	"fmt"

	"github.com/vybium/zk-stark-engine/internal/zkstark/air"
	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
	"github.com/vybium/zk-stark-engine/internal/zkstark/fri"
	"github.com/vybium/zk-stark-engine/internal/zkstark/transcript"
)

const protocolTag = "zkstark-engine/v1"

// Clock returns a Unix timestamp for the proof's GeneratedAtUnix
// field. It is injectable so tests can produce byte-identical proofs;
// the timestamp itself carries no weight in any binding or determinism
// guarantee the verifier checks.
type Clock func() int64

// Prove runs the complete, non-interactive STARK proving pipeline: derive
// the trace seed from the witness, build and check the execution trace,
// commit to its low-degree extension, run FRI, and assemble the transcript.
func Prove(statement, witness map[string]interface{}, config *Config, clock Clock) (*Proof, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	field, err := config.Field()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	// 1. Derive the trace seed from the witness.
	seed, err := DeriveTraceSeed(field, witness)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	// 2. Build the execution trace and check it against the AIR.
	a := air.NewSuccessorAIR(field)
	trace := air.BuildTrace(field, seed, config.TraceLength)
	if !a.EvaluateAll(trace) {
		return nil, fmt.Errorf("%w: execution trace fails its AIR constraints", ErrConstraintViolated)
	}

	// 3. Interpolate the trace polynomial from its subgroup evaluations.
	tracePoly, err := core.InterpolateFromSubgroupEvaluations(field, trace)
	if err != nil {
		return nil, fmt.Errorf("%w: interpolating trace: %s", ErrDomainMismatch, err)
	}

	// 4. Build the extension domain on a coset disjoint from the trace
	// subgroup, offset by core.GoldilocksGenerator (7) whatever the
	// configured field.
	offset := field.NewElementFromInt64(core.GoldilocksGenerator)
	extendedDomain, err := fri.InitialDomain(field, config.ExtendedLength(), offset)
	if err != nil {
		return nil, fmt.Errorf("%w: building extension domain: %s", ErrDomainMismatch, err)
	}

	// 5. Run the FRI commit phase; its first layer evaluates and commits
	// the trace polynomial over the extension domain, doubling as the
	// trace commitment the query indices are derived from.
	ch := transcript.NewChannel(config.HashFunction)
	commit, err := fri.Commit(field, tracePoly, extendedDomain, config.NumQueries, config.NumFRILayers, ch)
	if err != nil {
		return nil, fmt.Errorf("%w: FRI commit: %s", ErrCommitmentInvalid, err)
	}
	if len(commit.Layers) == 0 {
		return nil, fmt.Errorf("%w: FRI commit produced no layers", ErrCommitmentInvalid)
	}
	traceRoot := commit.Layers[0].Root

	// 6. Optional proof-of-work grinding. FRI already drew its fold
	// challenges above, so a configured grinding round instead guards the
	// query-index derivation: the nonce is mixed into the seed query
	// indices are derived from, rather than being cosmetic.
	var nonce uint64
	querySeed := traceRoot
	if config.GrindingBits > 0 {
		nonce = Grind(ch, config.GrindingBits)
		querySeed = transcript.MixNonce(traceRoot, nonce)
	}

	// 7. Derive query indices from the query seed and open every layer.
	queries, err := fri.Query(querySeed, commit.Layers, config.NumQueries)
	if err != nil {
		return nil, fmt.Errorf("%w: FRI query: %s", ErrCommitmentInvalid, err)
	}

	// 8. Compute the statement hash and public output.
	stmtHash, err := StatementHash(field, statement)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBindingFailure, err)
	}

	// 9. Assemble the transcript.
	proof := &Proof{
		ProtocolTag:    protocolTag,
		TraceLength:    config.TraceLength,
		ExtendedLength: config.ExtendedLength(),
		BlowupFactor:   config.BlowupFactor,
		TraceRoot:      rootHex(traceRoot),
		FRIRoots:       make([]string, len(commit.Layers)-1),
		Challenges:     make([]string, len(commit.Challenges)),
		FinalPolynomial: elementsToStrings(commit.FinalPolynomial),
		Queries:         make([]QueryView, len(queries)),
		FieldPrime:      field.Modulus().String(),
		SecurityBits:    config.SecurityBits,
		StatementHash:   stmtHash.Big().String(),
		PublicOutput:    trace[len(trace)-1].Big().String(),
		GrindingNonce:   nonce,
	}
	if clock != nil {
		proof.GeneratedAtUnix = clock()
	}
	for i := 1; i < len(commit.Layers); i++ {
		proof.FRIRoots[i-1] = rootHex(commit.Layers[i].Root)
	}
	for i, c := range commit.Challenges {
		proof.Challenges[i] = c.Big().String()
	}
	for qi, qp := range queries {
		view := QueryView{Index: qp.Index, Layers: make([]OpeningView, len(qp.Layers))}
		for li, op := range qp.Layers {
			view.Layers[li] = encodeOpening(op)
		}
		proof.Queries[qi] = view
	}

	return proof, nil
}

func elementsToStrings(elems []*core.FieldElement) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.Big().String()
	}
	return out
}
