// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow reports an arithmetic result that does not fit in uint64.
var ErrOverflow = errors.New("uint64 overflow")

// Integer lists the integer kinds accepted by the conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts signed or unsigned integers to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Add returns a+b, or ErrOverflow when the sum wraps.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}

// Mul returns a*b, or ErrOverflow when the product wraps.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return lo, nil
}
