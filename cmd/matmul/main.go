// Command matmul multiplies the two matrices of an input file with the naive
// kernel, the Strassen recursion or both, and writes timings and the product.
//
// Usage:
//
//	matmul [--input input.txt] [--output output.txt] [--algorithm both]
//	       [--leaf-size 1] [--parallel-depth 0] [--verify] [--timeout 0]
//
// Settings come from MATMUL_* environment variables or a .env file; flags
// override both.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
