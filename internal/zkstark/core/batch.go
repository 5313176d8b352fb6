package core

import "fmt"

// BatchBackend performs pointwise arithmetic over equal-length vectors. It is
// the plug point for an optional accelerator: any implementation MUST return
// the same pointwise result a scalar loop would, in the same order — no
// reordering is observable to callers. A backend unable to handle a given
// size falls back to scalar arithmetic rather than erroring.
type BatchBackend interface {
	Add(a, b []*FieldElement) ([]*FieldElement, bool)
	Mul(a, b []*FieldElement) ([]*FieldElement, bool)
}

// scalarBackend is the always-available fallback: a plain per-element loop.
type scalarBackend struct{}

func (scalarBackend) Add(a, b []*FieldElement) ([]*FieldElement, bool) {
	out := make([]*FieldElement, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out, true
}

func (scalarBackend) Mul(a, b []*FieldElement) ([]*FieldElement, bool) {
	out := make([]*FieldElement, len(a))
	for i := range a {
		out[i] = a[i].Mul(b[i])
	}
	return out, true
}

// SetBatchBackend installs an accelerator for this field's batch operations.
// Pass nil to restore the scalar fallback.
func (f *Field) SetBatchBackend(backend BatchBackend) {
	f.mu.Lock()
	f.backend = backend
	f.mu.Unlock()
}

func (f *Field) activeBackend() BatchBackend {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.backend != nil {
		return f.backend
	}
	return scalarBackend{}
}

// BatchAdd adds two equal-length vectors pointwise, via the configured
// accelerator backend when one is installed.
func (f *Field) BatchAdd(a, b []*FieldElement) ([]*FieldElement, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("core: batch add length mismatch: %d vs %d", len(a), len(b))
	}
	if out, ok := f.activeBackend().Add(a, b); ok {
		return out, nil
	}
	out, _ := scalarBackend{}.Add(a, b)
	return out, nil
}

// BatchMul multiplies two equal-length vectors pointwise.
func (f *Field) BatchMul(a, b []*FieldElement) ([]*FieldElement, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("core: batch mul length mismatch: %d vs %d", len(a), len(b))
	}
	if out, ok := f.activeBackend().Mul(a, b); ok {
		return out, nil
	}
	out, _ := scalarBackend{}.Mul(a, b)
	return out, nil
}

// BatchInversion inverts a vector of nonzero elements using Montgomery's
// trick: one field inversion plus 3(n-1) multiplications instead of n
// inversions.
func (f *Field) BatchInversion(elements []*FieldElement) ([]*FieldElement, error) {
	n := len(elements)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		inv, err := elements[0].Inv()
		if err != nil {
			return nil, err
		}
		return []*FieldElement{inv}, nil
	}

	for i, e := range elements {
		if e.IsZero() {
			return nil, fmt.Errorf("core: cannot invert zero element at index %d: %w", i, ErrDivisionByZero)
		}
	}

	acc := make([]*FieldElement, n)
	acc[0] = elements[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1].Mul(elements[i])
	}

	accInv, err := acc[n-1].Inv()
	if err != nil {
		return nil, err
	}

	out := make([]*FieldElement, n)
	for i := n - 1; i > 0; i-- {
		out[i] = accInv.Mul(acc[i-1])
		accInv = accInv.Mul(elements[i])
	}
	out[0] = accInv
	return out, nil
}
