// Package core implements the finite-field, polynomial and Merkle-commitment
// primitives the rest of the engine is built on.
package core

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
)

// Field is a prime field Z/pZ. The zero value is not usable; construct with
// NewField or NewFieldFromUint64.
type Field struct {
	modulus *big.Int
	generator *big.Int

	mu      sync.Mutex
	roots   map[int]*FieldElement // cache of primitive n-th roots of unity, keyed by n
	backend BatchBackend           // optional accelerator for batch ops, nil = scalar
}

// FieldElement is a value in [0, p). Every operation that produces one
// reduces it mod p.
type FieldElement struct {
	field *Field
	value *big.Int
}

// GoldilocksModulus is p = 2^64 - 2^32 + 1.
func GoldilocksModulus() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), 64)
	m.Sub(m, new(big.Int).Lsh(big.NewInt(1), 32))
	m.Add(m, big.NewInt(1))
	return m
}

// GoldilocksGenerator is 7, a generator of the Goldilocks multiplicative group.
const GoldilocksGenerator = 7

// NewField builds a field with the given modulus and multiplicative generator.
func NewField(modulus *big.Int, generator *big.Int) (*Field, error) {
	if modulus.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("modulus must be greater than 2")
	}
	return &Field{
		modulus:   new(big.Int).Set(modulus),
		generator: new(big.Int).Set(generator),
		roots:     make(map[int]*FieldElement),
	}, nil
}

// NewFieldFromUint64 builds a field from a uint64 modulus.
func NewFieldFromUint64(modulus uint64, generator uint64) (*Field, error) {
	return NewField(new(big.Int).SetUint64(modulus), new(big.Int).SetUint64(generator))
}

// NewGoldilocksField builds the default Goldilocks field used throughout the
// engine unless a STARKConfig requests a different prime.
func NewGoldilocksField() *Field {
	f, err := NewField(GoldilocksModulus(), big.NewInt(GoldilocksGenerator))
	if err != nil {
		// GoldilocksModulus is always > 2; this cannot happen.
		panic(err)
	}
	return f
}

// Modulus returns p.
func (f *Field) Modulus() *big.Int { return new(big.Int).Set(f.modulus) }

// Equals reports whether two fields share the same modulus.
func (f *Field) Equals(other *Field) bool { return f.modulus.Cmp(other.modulus) == 0 }

// NewElement reduces value mod p.
func (f *Field) NewElement(value *big.Int) *FieldElement {
	normalized := new(big.Int).Mod(value, f.modulus)
	return &FieldElement{field: f, value: normalized}
}

// NewElementFromInt64 reduces an int64 mod p.
func (f *Field) NewElementFromInt64(value int64) *FieldElement {
	return f.NewElement(big.NewInt(value))
}

// NewElementFromUint64 reduces a uint64 mod p.
func (f *Field) NewElementFromUint64(value uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// RandomElement draws a uniform element of the field.
func (f *Field) RandomElement() (*FieldElement, error) {
	value, err := rand.Int(rand.Reader, f.modulus)
	if err != nil {
		return nil, fmt.Errorf("random element: %w", err)
	}
	return f.NewElement(value), nil
}

// Zero returns the additive identity.
func (f *Field) Zero() *FieldElement { return f.NewElement(big.NewInt(0)) }

// One returns the multiplicative identity.
func (f *Field) One() *FieldElement { return f.NewElement(big.NewInt(1)) }

// PrimitiveRoot returns a primitive n-th root of unity, n | p-1. Orders that
// do not divide p-1 are a hard error: there is no honest fallback value, and
// returning one silently would break FRI soundness.
func (f *Field) PrimitiveRoot(n int) (*FieldElement, error) {
	if n <= 0 {
		return nil, fmt.Errorf("order must be positive, got %d", n)
	}

	f.mu.Lock()
	if cached, ok := f.roots[n]; ok {
		f.mu.Unlock()
		return cached, nil
	}
	f.mu.Unlock()

	order := big.NewInt(int64(n))
	pMinus1 := new(big.Int).Sub(f.modulus, big.NewInt(1))
	quotient, rem := new(big.Int).QuoRem(pMinus1, order, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("order %d does not divide p-1", n)
	}

	root := f.NewElement(new(big.Int).Exp(f.generator, quotient, f.modulus))
	if root.IsOne() && n != 1 {
		return nil, fmt.Errorf("order %d does not yield a proper primitive root", n)
	}

	f.mu.Lock()
	f.roots[n] = root
	f.mu.Unlock()
	return root, nil
}

// Domain returns the n distinct powers of the primitive n-th root of unity:
// omega^0, omega^1, ..., omega^(n-1). Fails under the same conditions as
// PrimitiveRoot.
func (f *Field) Domain(n int) ([]*FieldElement, error) {
	omega, err := f.PrimitiveRoot(n)
	if err != nil {
		return nil, err
	}
	return f.powersOf(omega, n), nil
}

// Coset returns a domain of size n multiplied through by a nonzero offset,
// disjoint from the base subgroup when offset is not itself in it.
func (f *Field) Coset(n int, offset *FieldElement) ([]*FieldElement, error) {
	if offset.IsZero() {
		return nil, fmt.Errorf("coset offset must be nonzero")
	}
	base, err := f.Domain(n)
	if err != nil {
		return nil, err
	}
	out := make([]*FieldElement, n)
	for i, x := range base {
		out[i] = x.Mul(offset)
	}
	return out, nil
}

func (f *Field) powersOf(base *FieldElement, n int) []*FieldElement {
	out := make([]*FieldElement, n)
	cur := f.One()
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = cur.Mul(base)
	}
	return out
}

// Big returns a copy of the underlying value.
func (fe *FieldElement) Big() *big.Int { return new(big.Int).Set(fe.value) }

// Field returns the field this element belongs to.
func (fe *FieldElement) Field() *Field { return fe.field }

// Add performs field addition.
func (fe *FieldElement) Add(other *FieldElement) *FieldElement {
	fe.mustMatch(other)
	return fe.field.NewElement(new(big.Int).Add(fe.value, other.value))
}

// Sub performs field subtraction.
func (fe *FieldElement) Sub(other *FieldElement) *FieldElement {
	fe.mustMatch(other)
	return fe.field.NewElement(new(big.Int).Sub(fe.value, other.value))
}

// Neg returns the additive inverse.
func (fe *FieldElement) Neg() *FieldElement {
	return fe.field.NewElement(new(big.Int).Neg(fe.value))
}

// Mul performs field multiplication.
func (fe *FieldElement) Mul(other *FieldElement) *FieldElement {
	fe.mustMatch(other)
	return fe.field.NewElement(new(big.Int).Mul(fe.value, other.value))
}

// Inv computes the multiplicative inverse via Fermat's little theorem,
// a^(p-2). Zero has no inverse.
func (fe *FieldElement) Inv() (*FieldElement, error) {
	if fe.IsZero() {
		return nil, ErrDivisionByZero
	}
	exp := new(big.Int).Sub(fe.field.modulus, big.NewInt(2))
	return fe.field.NewElement(new(big.Int).Exp(fe.value, exp, fe.field.modulus)), nil
}

// Div performs field division (multiplication by inverse).
func (fe *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	fe.mustMatch(other)
	inv, err := other.Inv()
	if err != nil {
		return nil, err
	}
	return fe.Mul(inv), nil
}

// Pow raises the element to a non-negative exponent.
func (fe *FieldElement) Pow(exponent *big.Int) *FieldElement {
	return fe.field.NewElement(new(big.Int).Exp(fe.value, exponent, fe.field.modulus))
}

// PowInt is the int64 convenience form of Pow.
func (fe *FieldElement) PowInt(exponent int64) *FieldElement {
	return fe.Pow(big.NewInt(exponent))
}

// Square computes fe * fe.
func (fe *FieldElement) Square() *FieldElement { return fe.Mul(fe) }

// Equal reports value equality within the same field.
func (fe *FieldElement) Equal(other *FieldElement) bool {
	if !fe.field.Equals(other.field) {
		return false
	}
	return fe.value.Cmp(other.value) == 0
}

// IsZero reports whether the element is the additive identity.
func (fe *FieldElement) IsZero() bool { return fe.value.Sign() == 0 }

// IsOne reports whether the element is the multiplicative identity.
func (fe *FieldElement) IsOne() bool { return fe.value.Cmp(big.NewInt(1)) == 0 }

// String renders the element's decimal value.
func (fe *FieldElement) String() string { return fe.value.String() }

// Bytes returns the big-endian byte representation (no fixed width).
func (fe *FieldElement) Bytes() []byte { return fe.value.Bytes() }

func (fe *FieldElement) mustMatch(other *FieldElement) {
	if !fe.field.Equals(other.field) {
		panic("core: field elements belong to different fields")
	}
}
