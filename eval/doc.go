// SPDX-License-Identifier: MIT

// Package eval computes the matrix denoted by an expression tree.
//
// Before any arithmetic, every multiplication chain of the tree is regrouped
// by chain.Optimize, so the evaluator always performs the minimal number of
// scalar multiplies for the given shapes. Leaves yield their stored matrix,
// Product nodes are computed with matrix.Mul and Sum nodes with matrix.Add.
//
// Usage:
//
//	var st eval.Stats
//	m, err := eval.Evaluate(tree, eval.WithStats(&st))
//	if err != nil {
//		return err
//	}
//	fmt.Println(m, st.Multiplies)
//
// WithoutOptimization evaluates the tree exactly as grouped; it exists for
// cross-checking results and measuring the work saved.
package eval
