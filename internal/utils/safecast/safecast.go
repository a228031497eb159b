// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"
	"strings"

	"github.com/holiman/uint256"
	"github.com/spf13/cast"
)

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// Int64ToUint64 safely converts an int64 to uint64 using cast and checks for overflow
func Int64ToUint64(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// IntToUint64 safely converts an int to uint64 using cast
func IntToUint64(value int) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// Float64ToUint64 safely converts a float64 to uint64 using cast and checks for overflow
func Float64ToUint64(value float64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %g is negative, cannot convert to uint64", value)
	}

	if value >= math.MaxUint64 {
		return 0, fmt.Errorf("value %g exceeds uint64 range", value)
	}

	if value != math.Trunc(value) {
		return 0, fmt.Errorf("value %g has fractional part, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// StringToUint64 parses a decimal string into a uint64. cast accepts negative input for
// unsigned targets in some versions, so the sign is checked first.
func StringToUint64(value string) (uint64, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "-") {
		return 0, fmt.Errorf("value %s is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// WordToUint64 converts a 256 bit word to uint64 and checks for overflow
func WordToUint64(value *uint256.Int) (uint64, error) {
	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds uint64 range", value.Dec())
	}

	return value.Uint64(), nil
}
