// Package matmul multiplies dense matrices with the naive cubic kernel and
// with Strassen's seven-product recursion, side by side.
//
// 🚀 What is matmul?
//
//	A small, dependency-light toolkit that brings together:
//		• Dense store: row-major float64 matrices with checked access
//		• Kernels: add, sub, in-place accumulate, naive multiply
//		• Padding: zero-fill to power-of-two shapes and crop back
//		• Strassen: partition/merge, seven products, optional parallel levels
//		• Text I/O: the input.txt / output.txt format of the matmul command
//
// ✨ Why choose matmul?
//
//   - Additive contract at every recursion level (dst += A×B)
//   - Pooled scratch buffers released on every exit path
//   - Cancellation through context, instrumentation through explicit Stats
//
// Under the hood, everything is organized under these packages:
//
//	matrix/          — Dense type, validators, Add/Sub/Mul/MulAdd, Pad/Crop, AllClose
//	strassen/        — NextPowerOfTwo, Partition/Merge, Multiply/MultiplyInto/MultiplyPadded
//	matio/           — ReadPair/ReadMatrix, WriteMatrix, WriteTiming
//	internal/config/ — MATMUL_* environment and .env settings
//	cmd/matmul/      — command-line driver
//
// Quick start:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := strassen.Multiply(a, b) // [[19 22] [43 50]]
package matmul
