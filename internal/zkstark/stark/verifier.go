package stark

import (
	"fmt"
	"math/big"

	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
	"github.com/vybium/zk-stark-engine/internal/zkstark/fri"
	"github.com/vybium/zk-stark-engine/internal/zkstark/transcript"
)

// Verify checks a Proof against the statement it claims to attest, under
// config. It returns a plain boolean plus a descriptive error for logging:
// callers that only want the pass/fail signal should check the boolean and
// discard the error's detail, since no internal failure reason is meant to
// be exposed to a proof's submitter.
func Verify(proof *Proof, statement map[string]interface{}, config *Config) (bool, error) {
	if err := config.Validate(); err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	field, err := config.Field()
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if proof.ProtocolTag != protocolTag {
		return false, fmt.Errorf("%w: unrecognized protocol tag %q", ErrInvalidInput, proof.ProtocolTag)
	}
	if proof.FieldPrime != field.Modulus().String() {
		return false, fmt.Errorf("%w: field prime mismatch", ErrDomainMismatch)
	}
	if proof.TraceLength != config.TraceLength || proof.BlowupFactor != config.BlowupFactor {
		return false, fmt.Errorf("%w: trace length/blowup mismatch", ErrDomainMismatch)
	}

	stmtHash, err := StatementHash(field, statement)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrBindingFailure, err)
	}
	if stmtHash.Big().String() != proof.StatementHash {
		return false, fmt.Errorf("%w: statement hash mismatch", ErrBindingFailure)
	}

	traceRoot, err := decodeRootHex(proof.TraceRoot)
	if err != nil {
		return false, fmt.Errorf("%w: malformed trace commitment root: %s", ErrCommitmentInvalid, err)
	}

	minResponses := (config.NumQueries + 1) / 2
	if len(proof.Queries) < minResponses {
		return false, fmt.Errorf("%w: only %d of %d required query responses present", ErrCommitmentInvalid, len(proof.Queries), minResponses)
	}

	roots := make([][32]byte, len(proof.FRIRoots)+1)
	roots[0] = traceRoot
	for i, rh := range proof.FRIRoots {
		r, err := decodeRootHex(rh)
		if err != nil {
			return false, fmt.Errorf("%w: malformed FRI root %d: %s", ErrCommitmentInvalid, i, err)
		}
		roots[i+1] = r
	}

	challenges := make([]*core.FieldElement, len(proof.Challenges))
	for i, c := range proof.Challenges {
		v, ok := new(big.Int).SetString(c, 10)
		if !ok {
			return false, fmt.Errorf("%w: malformed challenge %d", ErrCommitmentInvalid, i)
		}
		challenges[i] = field.NewElement(v)
	}

	finalPoly := make([]*core.FieldElement, len(proof.FinalPolynomial))
	for i, c := range proof.FinalPolynomial {
		v, ok := new(big.Int).SetString(c, 10)
		if !ok {
			return false, fmt.Errorf("%w: malformed final polynomial coefficient %d", ErrLowDegreeFailure, i)
		}
		finalPoly[i] = field.NewElement(v)
	}

	offset := field.NewElementFromInt64(core.GoldilocksGenerator)
	initialDomain, err := fri.InitialDomain(field, proof.ExtendedLength, offset)
	if err != nil {
		return false, fmt.Errorf("%w: rebuilding extension domain: %s", ErrDomainMismatch, err)
	}

	queries, err := decodeQueries(field, proof.Queries)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrCommitmentInvalid, err)
	}

	params := fri.VerifyParams{
		Field:         field,
		TraceRoot:     traceRoot,
		Roots:         roots,
		Challenges:    challenges,
		FinalPoly:     finalPoly,
		InitialDomain: initialDomain,
		NumQueries:    config.NumQueries,
	}

	// Replay the transcript's own bookkeeping hash up through the last FRI
	// layer root and challenge draw, exactly the state the prover's Grind
	// call ran against, so a configured grinding round's proof-of-work and
	// query-seed mixing can be checked independently of fri.Verify (which
	// redoes this same replay to check the fold challenges themselves).
	ch := transcript.NewChannel(config.HashFunction)
	for _, root := range roots {
		ch.Send(root[:])
		ch.DrawFieldElement(field)
	}
	querySeed := traceRoot
	if config.GrindingBits > 0 {
		if !VerifyGrind(ch, proof.GrindingNonce, config.GrindingBits) {
			return false, fmt.Errorf("%w: grinding proof-of-work check failed", ErrCommitmentInvalid)
		}
		querySeed = transcript.MixNonce(traceRoot, proof.GrindingNonce)
	}
	params.TraceRoot = querySeed

	if err := fri.Verify(params, queries, config.HashFunction); err != nil {
		return false, fmt.Errorf("%w: %s", ErrLowDegreeFailure, err)
	}

	return true, nil
}

func decodeQueries(field *core.Field, views []QueryView) ([]fri.QueryProof, error) {
	out := make([]fri.QueryProof, len(views))
	for i, v := range views {
		qp := fri.QueryProof{Index: v.Index, Layers: make([]fri.Opening, len(v.Layers))}
		for li, lv := range v.Layers {
			evenValue, ok := new(big.Int).SetString(lv.EvenValue, 10)
			if !ok {
				return nil, fmt.Errorf("query %d layer %d: malformed even value", i, li)
			}
			oddValue, ok := new(big.Int).SetString(lv.OddValue, 10)
			if !ok {
				return nil, fmt.Errorf("query %d layer %d: malformed odd value", i, li)
			}
			evenProof, err := decodeProofNodes(lv.EvenProof)
			if err != nil {
				return nil, fmt.Errorf("query %d layer %d: %w", i, li, err)
			}
			oddProof, err := decodeProofNodes(lv.OddProof)
			if err != nil {
				return nil, fmt.Errorf("query %d layer %d: %w", i, li, err)
			}
			qp.Layers[li] = fri.Opening{
				EvenIndex: lv.EvenIndex,
				EvenValue: field.NewElement(evenValue),
				EvenProof: evenProof,
				OddValue:  field.NewElement(oddValue),
				OddProof:  oddProof,
			}
		}
		out[i] = qp
	}
	return out, nil
}
