// SPDX-License-Identifier: MIT
package strassen_test

import (
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/strassen"
)

// ExampleMultiply runs one recursion level on 2×2 operands.
func ExampleMultiply() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	c, err := strassen.Multiply(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMultiplyPadded multiplies a 3×2 by a 2×3 matrix; operands are padded
// to 4×2 and 2×4, so the recursion bottoms out one level down.
func ExampleMultiplyPadded() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	b, _ := matrix.NewDenseFromRows([][]float64{{7, 8, 9}, {10, 11, 12}})

	var st strassen.Stats
	c, err := strassen.MultiplyPadded(a, b, strassen.WithStats(&st))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	fmt.Println("max depth:", st.Snapshot().MaxDepth)
	// Output:
	// [27, 30, 33]
	// [61, 68, 75]
	// [95, 106, 117]
	// max depth: 1
}

// ExampleNextPowerOfTwo shows the dimension normalization used for padding.
func ExampleNextPowerOfTwo() {
	for _, d := range []int{0, 1, 3, 8, 100} {
		fmt.Print(strassen.NextPowerOfTwo(d), " ")
	}
	fmt.Println()
	// Output: 1 1 4 8 128
}
