// Package mapping encodes total functions between small finite sets as
// integers, so that dynamic-programming tables can be dense slices indexed
// by the function itself.
//
// A function f: {0..k-1} → {0..m-1} is written in base m: the digit with
// significance s is f(s). For example, with m = 4 the function
// [3, 1, 0] (f(0)=3, f(1)=1, f(2)=0) is the integer 3 + 1·4 + 0·16 = 7.
//
// Operations (m = base, f = encoded function, s = significance):
//
//	Apply(m, f, s)     – the image f(s)
//	Extend(m, f, s, v) – insert a new digit v at significance s, shifting higher digits up
//	Reduce(m, f, s)    – delete the digit at significance s, shifting higher digits down
//	Pow(m, k)          – m^k, the number of functions from k elements, or ErrOverflow
//
// All operations are O(k) at most and allocation-free except Decode.
package mapping

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Sentinel errors for mapping operations.
var (
	// ErrOverflow indicates that m^k does not fit in a uint64.
	ErrOverflow = errors.New("mapping: value overflows uint64")

	// ErrDigitOutOfRange indicates a digit outside [0,m) passed to Encode.
	ErrDigitOutOfRange = errors.New("mapping: digit out of range")
)

// Pow returns m^k. By convention 0^0 = 1. Returns ErrOverflow when the
// result exceeds math.MaxUint64.
func Pow(m, k uint64) (uint64, error) {
	result := uint64(1)
	for i := uint64(0); i < k; i++ {
		hi, lo := bits.Mul64(result, m)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d^%d", ErrOverflow, m, k)
		}
		result = lo
		if result == 0 {
			return 0, nil
		}
	}

	return result, nil
}

// pow is Pow for callers that already know the result fits.
func pow(m, k uint64) uint64 {
	p, err := Pow(m, k)
	if err != nil {
		return math.MaxUint64
	}

	return p
}

// Apply returns the digit of f with significance s, i.e. the image of element s.
// Base 0 has no functions on a non-empty domain; Apply, Extend and Reduce return 0 for it.
func Apply(m, f, s uint64) uint64 {
	if m == 0 {
		return 0
	}
	return (f / pow(m, s)) % m
}

// Extend inserts digit v at significance s. Digits with significance ≥ s
// move up by one.
func Extend(m, f, s, v uint64) uint64 {
	if m == 0 {
		return 0
	}
	p := pow(m, s)
	r := f % p
	l := f - r

	return m*l + p*v + r
}

// Reduce removes the digit with significance s. Digits above s move down by one.
func Reduce(m, f, s uint64) uint64 {
	if m == 0 {
		return 0
	}
	p := pow(m, s)
	r := f % p
	l := f - f%(p*m)

	return l/m + r
}

// Encode packs digits (digits[s] = f(s)) into an integer in base m.
func Encode(m uint64, digits []int) (uint64, error) {
	if _, err := Pow(m, uint64(len(digits))); err != nil {
		return 0, err
	}
	var f uint64
	for s := len(digits) - 1; s >= 0; s-- {
		d := digits[s]
		if d < 0 || uint64(d) >= m {
			return 0, fmt.Errorf("%w: digit %d at %d not in [0,%d)", ErrDigitOutOfRange, d, s, m)
		}
		f = f*m + uint64(d)
	}

	return f, nil
}

// Decode unpacks the k low digits of f in base m; out[s] = f(s).
func Decode(m, f uint64, k int) []int {
	out := make([]int, k)
	if m == 0 {
		return out
	}
	for s := 0; s < k; s++ {
		out[s] = int(f % m)
		f /= m
	}

	return out
}
