package hom

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/homcount/mapping"
)

// add returns a+b, failing with ErrSpaceTooLarge on overflow.
func add(a, b uint64) (uint64, error) {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrSpaceTooLarge, a, b)
	}
	return s, nil
}

// mul returns a·b, failing with ErrSpaceTooLarge on overflow.
func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d · %d", ErrSpaceTooLarge, a, b)
	}
	return lo, nil
}

// tableLen returns m^k, the number of maps from a k-element bag into m
// targets, rejecting tables whose copies·m^k entries exceed limit.
func tableLen(m uint64, k int, copies, limit uint64) (uint64, error) {
	size, err := mapping.Pow(m, uint64(k))
	if err == nil {
		var total uint64
		if total, err = mul(size, copies); err == nil && total <= limit {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%w: %d × %d^%d entries exceed %d", ErrTableTooLarge, copies, m, k, limit)
}
