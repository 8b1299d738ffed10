// SPDX-License-Identifier: MIT
// Package strassen multiplies dense matrices with Strassen's divide-and-conquer
// scheme: seven half-size products per level instead of eight.
//
// Building blocks:
//   - NextPowerOfTwo / IsPowerOfTwo normalize dimensions before recursion.
//   - Partition / Merge split a matrix into four quadrants and join them back.
//   - Multiply / MultiplyInto run the recursive engine on power-of-two operands.
//   - MultiplyPadded pads arbitrary operands, multiplies and crops the result.
//
// Products of one recursion level (A, B split into quadrants):
//
//	P = (A11+A22)(B11+B22)    C11 = P + S - T + V
//	Q = (A21+A22) B11         C12 = R + T
//	R =  A11 (B12-B22)        C21 = Q + S
//	S =  A22 (B21-B11)        C22 = P + R - Q + U
//	T = (A11+A12) B22
//	U = (A21-A11)(B11+B12)
//	V = (A12-A22)(B21+B22)
//
// The recursion stops when the left operand has one row, the inner dimension
// is one, or the right operand has one column (or the configured leaf size is
// reached); the base case accumulates with matrix.MulAdd.
//
// Every level is additive: MultiplyInto computes dst += A×B, so callers obtain
// a plain product from a zeroed dst (Multiply does this for them).
//
// Concurrency:
//   - The seven products of a level are independent. WithParallelDepth(d) runs
//     them through an errgroup for the first d levels and joins before
//     recombination. Each product owns its buffers; no locking is involved.
//   - Scratch matrices come from a size-keyed sync.Pool and are returned when
//     their recursion frame exits, on success and on error alike.
//
// Cancellation:
//   - WithContext installs a context checked on entry to every frame.
package strassen
