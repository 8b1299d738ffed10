// SPDX-License-Identifier: MIT
// Package matio reads and writes matrices in a whitespace-separated text format.
//
// Input layout (any whitespace, including newlines, separates tokens):
//
//	ma na
//	a[0][0] a[0][1] ... a[ma-1][na-1]
//	mb nb
//	b[0][0] ... b[mb-1][nb-1]
//
// ReadPair reads both operands and rejects na != mb; ReadMatrix reads one block.
// Headers above MaxElements values are rejected before allocation.
//
// Output layout: a "rows cols" header followed by one line per row with each
// value printed as "%8.2f ". WriteTiming emits "<label> cost <duration>" lines.
package matio
