// Package matchain is your toolkit for describing matrix expressions and
// evaluating them with the fewest scalar multiplications.
//
// 🚀 What is matchain?
//
//	A small, dependency-light library that brings together:
//		• Expressions: immutable Leaf / Product / Sum trees, shape-checked on construction
//		• Chain optimizer: the O(n³) interval DP that regroups A·B·C·… optimally
//		• Evaluator: real dense arithmetic on the regrouped tree, with work statistics
//		• CLI: plan a chain from its shapes, or evaluate it on random data
//
// ✨ Why choose matchain?
//
//   - Shapes are validated once, when the tree is built; no later surprises
//   - Deterministic output: ties always resolve to the leftmost split
//   - Long chains welcome: flattening and rebuilding use explicit stacks
//
// Everything is organized under four subpackages:
//
//	matrix/ Dense storage, Add, Mul, MulCost, AllClose
//	expr/   expression tree construction, rendering and traversal
//	chain/  Flatten, CostTable, Optimize, Cost
//	eval/   Evaluate with optional stats and logging
//
// Quick example:
//
//	A(10×1)·B(1×100)·C(100×10)
//
//	((A·B)·C) costs 11000 multiplies, (A·(B·C)) only 1100.
//
//	go get github.com/katalvlaran/matchain
package matchain
