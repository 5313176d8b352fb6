// Package fri implements the Fast Reed-Solomon Interactive Oracle of
// Proximity: the protocol that proves a committed function is close to a
// low-degree polynomial, using logarithmically many Merkle-committed
// folding rounds bound together by a Fiat-Shamir transcript.
package fri

import (
	"fmt"

	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
	"github.com/vybium/zk-stark-engine/internal/zkstark/transcript"
)

// Layer holds everything the prover keeps from one commit round: the root
// sent to the verifier plus the domain and evaluations needed to answer
// queries against it.
type Layer struct {
	Root        [32]byte
	Domain      []*core.FieldElement
	Evaluations []*core.FieldElement
	tree        *core.MerkleTree
}

// CommitResult is the prover-side output of the commit phase.
type CommitResult struct {
	Layers          []Layer
	Challenges      []*core.FieldElement
	FinalPolynomial []*core.FieldElement // coefficients
}

// InitialDomain builds the bit-reversed coset domain FRI folds over: size
// elements of the order-size subgroup scaled by offset, permuted so that
// domain[2i] and domain[2i+1] are always a {x, -x} pair.
func InitialDomain(field *core.Field, size int, offset *core.FieldElement) ([]*core.FieldElement, error) {
	d, err := field.Coset(size, offset)
	if err != nil {
		return nil, err
	}
	core.ReverseDomain(d)
	return d, nil
}

// Commit runs the FRI commit phase on poly over domain, folding until
// either the domain has shrunk to 2*numQueries or maxLayers rounds have
// elapsed, whichever comes first, and returns the layer commitments, the
// Fiat-Shamir challenges drawn along the way, and the final polynomial.
func Commit(field *core.Field, poly *core.Polynomial, domain []*core.FieldElement, numQueries, maxLayers int, ch *transcript.Channel) (*CommitResult, error) {
	if len(poly.Coefficients()) > len(domain) {
		return nil, fmt.Errorf("fri: polynomial degree exceeds domain size")
	}

	result := &CommitResult{}
	currentPoly := poly
	currentDomain := domain

	for len(currentDomain) > 2*numQueries && len(result.Layers) < maxLayers {
		evaluations, err := currentPoly.EvalDomain(currentDomain)
		if err != nil {
			return nil, fmt.Errorf("fri: evaluating layer %d: %w", len(result.Layers), err)
		}

		leaves := make([][]byte, len(evaluations))
		for i, v := range evaluations {
			leaves[i] = []byte(v.String())
		}
		tree := core.NewMerkleTree(leaves)
		root := tree.Root()

		ch.Send(root[:])
		alpha := ch.DrawFieldElement(field)

		result.Layers = append(result.Layers, Layer{
			Root:        root,
			Domain:      currentDomain,
			Evaluations: evaluations,
			tree:        tree,
		})
		result.Challenges = append(result.Challenges, alpha)

		folded, err := fold(field, currentPoly, alpha)
		if err != nil {
			return nil, err
		}
		currentPoly = folded
		currentDomain = squareEvenIndices(currentDomain)
	}

	result.FinalPolynomial = currentPoly.Coefficients()
	return result, nil
}

// fold splits poly's coefficients into even- and odd-index halves f_e, f_o
// and returns f_e + alpha*f_o, exactly halving the degree.
func fold(field *core.Field, poly *core.Polynomial, alpha *core.FieldElement) (*core.Polynomial, error) {
	coeffs := poly.Coefficients()
	n := len(coeffs)
	half := (n + 1) / 2

	evenCoeffs := make([]*core.FieldElement, half)
	oddCoeffs := make([]*core.FieldElement, half)
	for i := 0; i < half; i++ {
		if 2*i < n {
			evenCoeffs[i] = coeffs[2*i]
		} else {
			evenCoeffs[i] = field.Zero()
		}
		if 2*i+1 < n {
			oddCoeffs[i] = coeffs[2*i+1]
		} else {
			oddCoeffs[i] = field.Zero()
		}
	}

	folded := make([]*core.FieldElement, half)
	for i := range folded {
		folded[i] = evenCoeffs[i].Add(alpha.Mul(oddCoeffs[i]))
	}
	return core.NewPolynomial(folded)
}

func squareEvenIndices(domain []*core.FieldElement) []*core.FieldElement {
	out := make([]*core.FieldElement, len(domain)/2)
	for i := range out {
		out[i] = domain[2*i].Mul(domain[2*i])
	}
	return out
}

// Opening is one layer's worth of data opened for a single query: the
// value at the paired-even index, the value at its sibling (index XOR 1),
// and both Merkle inclusion proofs.
type Opening struct {
	EvenIndex int
	EvenValue *core.FieldElement
	EvenProof []core.ProofNode
	OddValue  *core.FieldElement
	OddProof  []core.ProofNode
}

// QueryProof is every layer's opening for one query index.
type QueryProof struct {
	Index  int
	Layers []Opening
}

// Query derives numQueries indices from the trace root (idx = SHA-256(root
// || "queries" || i) mod N) and opens, at every layer, the evaluation at
// the paired-even index and its sibling.
func Query(traceRoot [32]byte, layers []Layer, numQueries int) ([]QueryProof, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("fri: cannot query with zero layers")
	}
	domainSize := len(layers[0].Domain)

	queries := make([]QueryProof, numQueries)
	for q := 0; q < numQueries; q++ {
		idx := transcript.QueryIndex(traceRoot, q, domainSize)
		qp := QueryProof{Index: idx}

		cur := idx
		for _, layer := range layers {
			evenIdx := cur &^ 1
			oddIdx := evenIdx | 1
			if oddIdx >= len(layer.Domain) {
				oddIdx = evenIdx
			}

			evenProof, err := layer.tree.Prove(evenIdx)
			if err != nil {
				return nil, fmt.Errorf("fri: opening query %d: %w", q, err)
			}
			oddProof, err := layer.tree.Prove(oddIdx)
			if err != nil {
				return nil, fmt.Errorf("fri: opening query %d: %w", q, err)
			}

			qp.Layers = append(qp.Layers, Opening{
				EvenIndex: evenIdx,
				EvenValue: layer.Evaluations[evenIdx],
				EvenProof: evenProof,
				OddValue:  layer.Evaluations[oddIdx],
				OddProof:  oddProof,
			})
			cur /= 2
		}
		queries[q] = qp
	}
	return queries, nil
}

// VerifyParams bundles everything Verify needs beyond the proof and
// queries themselves.
type VerifyParams struct {
	Field         *core.Field
	TraceRoot     [32]byte
	Roots         [][32]byte
	Challenges    []*core.FieldElement
	FinalPoly     []*core.FieldElement
	InitialDomain []*core.FieldElement
	NumQueries    int
}

// Verify replays the Fiat-Shamir transcript from the committed roots,
// requires the recomputed challenges to match the ones carried in the
// proof (catching any post-hoc tamper with a stored challenge), checks
// every query's Merkle inclusions against the corresponding layer root,
// checks the fold-consistency equation at every layer including the last
// (where the fold must land on the final polynomial's own evaluation,
// binding it to the committed chain instead of leaving it floating), and
// checks the final polynomial's degree bound.
func Verify(params VerifyParams, queries []QueryProof, hashName string) error {
	ch := transcript.NewChannel(hashName)
	recomputed := make([]*core.FieldElement, len(params.Roots))
	for i, root := range params.Roots {
		ch.Send(root[:])
		recomputed[i] = ch.DrawFieldElement(params.Field)
	}
	if len(recomputed) != len(params.Challenges) {
		return fmt.Errorf("fri: challenge count mismatch")
	}
	for i := range recomputed {
		if !recomputed[i].Equal(params.Challenges[i]) {
			return fmt.Errorf("fri: fold challenge %d does not match the committed transcript", i)
		}
	}

	finalPoly, err := core.NewPolynomial(params.FinalPoly)
	if err != nil {
		return fmt.Errorf("fri: invalid final polynomial: %w", err)
	}
	if finalPoly.Degree() > params.NumQueries {
		return fmt.Errorf("fri: final polynomial degree %d exceeds bound %d", finalPoly.Degree(), params.NumQueries)
	}

	domain := params.InitialDomain
	two := params.Field.NewElementFromInt64(2)

	for qi, qp := range queries {
		expectedIdx := transcript.QueryIndex(params.TraceRoot, qi, len(domain))
		if qp.Index != expectedIdx {
			return fmt.Errorf("fri: query %d index %d does not match the Fiat-Shamir derivation %d", qi, qp.Index, expectedIdx)
		}
		if len(qp.Layers) != len(params.Roots) {
			return fmt.Errorf("fri: query %d has %d layers, expected %d", qi, len(qp.Layers), len(params.Roots))
		}

		cur := qp.Index
		layerDomain := domain
		for li, op := range qp.Layers {
			if op.EvenIndex != cur&^1 {
				return fmt.Errorf("fri: query %d layer %d opened the wrong index", qi, li)
			}
			cur /= 2
			if !core.VerifyProof(params.Roots[li], []byte(op.EvenValue.String()), op.EvenIndex, op.EvenProof) {
				return fmt.Errorf("fri: query %d layer %d even-value Merkle proof failed", qi, li)
			}
			oddIdx := op.EvenIndex | 1
			if !core.VerifyProof(params.Roots[li], []byte(op.OddValue.String()), oddIdx, op.OddProof) {
				return fmt.Errorf("fri: query %d layer %d odd-value Merkle proof failed", qi, li)
			}

			x := layerDomain[op.EvenIndex]
			alpha := params.Challenges[li]

			sum := op.EvenValue.Add(op.OddValue)
			invTwo, err := two.Inv()
			if err != nil {
				return err
			}
			firstTerm := sum.Mul(invTwo)

			diff := op.EvenValue.Sub(op.OddValue)
			twoX := x.Mul(two)
			invTwoX, err := twoX.Inv()
			if err != nil {
				return fmt.Errorf("fri: query %d layer %d: %w", qi, li, err)
			}
			secondTerm := alpha.Mul(diff.Mul(invTwoX))

			folded := firstTerm.Add(secondTerm)

			if li == len(qp.Layers)-1 {
				// Terminal anchor: the last committed layer has no next
				// layer to compare against, so the fold must land on the
				// final polynomial itself, evaluated at the squared point.
				expectedValue := finalPoly.Eval(x.Mul(x))
				if !folded.Equal(expectedValue) {
					return fmt.Errorf("fri: query %d final polynomial does not match the last layer's fold", qi)
				}
				continue
			}

			nextExpected := qp.Layers[li+1]
			target := op.EvenIndex / 2
			var expectedValue *core.FieldElement
			if target == nextExpected.EvenIndex {
				expectedValue = nextExpected.EvenValue
			} else {
				expectedValue = nextExpected.OddValue
			}
			if !folded.Equal(expectedValue) {
				return fmt.Errorf("fri: query %d layer %d fold-consistency check failed", qi, li)
			}

			layerDomain = squareEvenIndices(layerDomain)
		}
	}

	return nil
}
