package core

import "fmt"

// NTT computes the forward Number-Theoretic Transform of values over the
// subgroup generated by the primitive n-th root of unity, n = len(values),
// using the iterative Cooley-Tukey radix-2 algorithm with a bit-reversal
// permutation. n must be a power of two dividing p-1.
func (f *Field) NTT(values []*FieldElement) ([]*FieldElement, error) {
	return f.nttCore(values, false)
}

// INTT computes the inverse transform: coefficients from evaluations on the
// order-n subgroup. intt(ntt(v)) == v.
func (f *Field) INTT(values []*FieldElement) ([]*FieldElement, error) {
	return f.nttCore(values, true)
}

func (f *Field) nttCore(values []*FieldElement, inverse bool) ([]*FieldElement, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("core: NTT requires a non-empty vector")
	}
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("core: NTT length %d is not a power of two", n)
	}

	omega, err := f.PrimitiveRoot(n)
	if err != nil {
		return nil, fmt.Errorf("core: NTT domain: %w", err)
	}
	if inverse {
		omega, err = omega.Inv()
		if err != nil {
			return nil, err
		}
	}

	out := make([]*FieldElement, n)
	copy(out, values)
	bitReverse(out)

	twiddles := f.powersOf(omega, n/2)

	for length := 2; length <= n; length <<= 1 {
		half := length / 2
		stride := n / length
		for start := 0; start < n; start += length {
			for i := 0; i < half; i++ {
				w := twiddles[i*stride]
				u := out[start+i]
				v := out[start+i+half].Mul(w)
				out[start+i] = u.Add(v)
				out[start+i+half] = u.Sub(v)
			}
		}
	}

	if inverse {
		nInv, err := f.NewElementFromInt64(int64(n)).Inv()
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = out[i].Mul(nInv)
		}
	}

	return out, nil
}

// ReverseDomain permutes elements into bit-reversed order in place. FRI
// relies on this ordering so that adjacent pairs (domain[2i], domain[2i+1])
// are always a {x, -x} pair, letting the fold step work on consecutive
// indices rather than index and index+n/2.
func ReverseDomain(a []*FieldElement) {
	bitReverse(a)
}

func bitReverse(a []*FieldElement) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of a power of two, or -1 otherwise.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if IsPowerOfTwo(n) {
		return n
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
