// Package matrix provides the dense row-major store and the elementary
// kernels every multiplication strategy in this module is built from.
//
// The matrix package provides:
//
//   - Dense: a contiguous row-major buffer with bounds-checked At/Set,
//     no-copy windows (View) and raw row access for strided block copies.
//   - Elementwise combinators: Add, Sub (fresh result) and AddTo (in place).
//   - The naive multiplier: Mul (C = A×B) and the additive kernel MulAdd
//     (C += A×B) that recursive algorithms use at their base case.
//   - Padding helpers: Pad enlarges a matrix with zero rows/columns and Crop
//     copies the top-left block back out, so power-of-two algorithms can run
//     on arbitrary shapes.
//   - Comparison: AllClose (tolerance based) and Equal (bit exact).
//
// Errors are package sentinels (errors.go) matched with errors.Is; kernels
// never panic on user input.
//
// ExampleMul and ExamplePad show typical use; package strassen builds on it.
package matrix
