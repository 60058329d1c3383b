// SPDX-License-Identifier: MIT

// Package chain reorders matrix multiplication chains to minimize the number
// of scalar multiplications.
//
// 🚀 What is a chain?
//
//	A chain is a maximal run of nested Product nodes in an expression tree,
//	e.g. ((A·B)·C)·D. Every grouping of the same operands computes the same
//	matrix, but the work differs wildly: for shapes 400×300, 300×30, 30×500,
//	500×400 the left-to-right grouping costs 89.6M multiplies while
//	(A·B)·(C·D) costs 14.4M.
//
// ✨ Key features:
//   - Optimize rewrites every chain of a tree; Sum nodes are chain boundaries,
//     their operands are optimized independently.
//   - CostTable is the classic O(n³) interval dynamic program, with the
//     leftmost minimizing split recorded for deterministic output.
//   - Flattening and tree reconstruction use explicit stacks, so chain length
//     is not limited by goroutine stack depth.
//   - Cost measures the multiply count of any tree, optimized or not.
//
// ⚙️ Usage:
//
//	opt := chain.Optimize(tree)
//	fmt.Println(opt, chain.Cost(tree), "→", chain.Cost(opt))
//
// Performance:
//
//   - Time:   O(n³) per chain of n operands
//   - Memory: O(n²) per chain, released when the call returns
//
// Optimize never mutates its input and has no shared state, so independent
// trees can be optimized concurrently.
package chain
