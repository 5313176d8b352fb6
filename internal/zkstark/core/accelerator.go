package core

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// GoldilocksAccelerator is a BatchBackend that performs batch arithmetic as
// native uint64 operations in the vybium-crypto Goldilocks field package
// instead of through math/big. It is only correct for fields whose modulus
// is exactly the Goldilocks prime; NewGoldilocksAccelerator refuses to
// attach to any other field, and both Add and Mul report ok=false (letting
// the caller fall back to scalar arithmetic) for any size or value outside
// what the backend understands.
type GoldilocksAccelerator struct {
	owner *Field
}

// NewGoldilocksAccelerator builds an accelerator bound to f. It fails if f's
// modulus is not the Goldilocks prime, since the backend's uint64 reduction
// is only valid for that exact modulus.
func NewGoldilocksAccelerator(f *Field) (*GoldilocksAccelerator, error) {
	if f.Modulus().Cmp(GoldilocksModulus()) != 0 {
		return nil, errNotGoldilocks
	}
	return &GoldilocksAccelerator{owner: f}, nil
}

func (g *GoldilocksAccelerator) Add(a, b []*FieldElement) ([]*FieldElement, bool) {
	return g.pointwise(a, b, func(x, y field.Element) field.Element { return x.Add(y) })
}

func (g *GoldilocksAccelerator) Mul(a, b []*FieldElement) ([]*FieldElement, bool) {
	return g.pointwise(a, b, func(x, y field.Element) field.Element { return x.Mul(y) })
}

func (g *GoldilocksAccelerator) pointwise(a, b []*FieldElement, op func(field.Element, field.Element) field.Element) ([]*FieldElement, bool) {
	out := make([]*FieldElement, len(a))
	for i := range a {
		av := a[i].Big()
		bv := b[i].Big()
		if !av.IsUint64() || !bv.IsUint64() {
			return nil, false
		}
		x := field.New(av.Uint64())
		y := field.New(bv.Uint64())
		r := op(x, y)
		out[i] = g.owner.NewElementFromUint64(r.Value())
	}
	return out, true
}
