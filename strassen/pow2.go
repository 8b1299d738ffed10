// SPDX-License-Identifier: MIT
package strassen

import "math/bits"

// NextPowerOfTwo returns the smallest power of two ≥ d.
// Non-positive d maps to 1, so a normalized dimension is never zero.
//
// Properties:
//   - NextPowerOfTwo(NextPowerOfTwo(d)) == NextPowerOfTwo(d).
//   - For d ≥ 1 the result r satisfies d ≤ r < 2d.
//
// Complexity: O(1).
func NextPowerOfTwo(d int) int {
	if d <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(d-1))
}

// IsPowerOfTwo reports whether d is a positive power of two.
func IsPowerOfTwo(d int) bool {
	return d > 0 && d&(d-1) == 0
}
