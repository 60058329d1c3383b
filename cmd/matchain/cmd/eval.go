// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/eval"
	"github.com/katalvlaran/matchain/expr"
	"github.com/katalvlaran/matchain/matrix"
)

var exampleForEvalCmd = `matchain eval 40x30 30x3 3x50 50x40
matchain eval 200x10 10x200 200x10 --seed 7`

// errResultsDiffer means the regrouped chain did not reproduce the naive result.
var errResultsDiffer = errors.New("optimized and naive results differ")

func newEvalCmd(v *viper.Viper) *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval SHAPE...",
		Short: "Multiply random matrices naively and optimized, and compare",
		Long: `Eval fills every operand with uniform random values in [-1, 1), evaluates
the chain once left to right and once in its optimal grouping, and reports the
multiplies and wall time of both. The command fails if the two results differ
by more than the tolerance.`,
		Example: exampleForEvalCmd,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := parseChain(args)
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(v.GetInt64("seed")))
			ops := make([]*expr.Expr, len(shapes))
			for i, s := range shapes {
				m, err := matrix.NewRandom(s.rows, s.cols, rng)
				if err != nil {
					return errors.Wrapf(err, "failed to fill %s", s)
				}
				if ops[i], err = expr.NewLeaf(m, s.label); err != nil {
					return err
				}
			}
			tree := chain.LeftToRight(ops)

			naive, naiveSt, naiveDur, err := timedEvaluate(tree, eval.WithoutOptimization())
			if err != nil {
				return err
			}
			opt, optSt, optDur, err := timedEvaluate(tree)
			if err != nil {
				return err
			}
			tol := v.GetFloat64("tolerance")
			agree, err := matrix.AllClose(opt, naive, tol, tol)
			if err != nil {
				return errors.Wrap(err, "failed to compare results")
			}
			logrus.WithFields(logrus.Fields{
				"naive":     naiveSt.Multiplies,
				"optimized": optSt.Multiplies,
			}).Debug("evaluated chain")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grouping:  %s\n", chain.Optimize(tree))
			fmt.Fprintf(out, "naive:     %d multiplies in %s\n", naiveSt.Multiplies, naiveDur)
			fmt.Fprintf(out, "optimized: %d multiplies in %s\n", optSt.Multiplies, optDur)
			fmt.Fprintf(out, "agree:     %t (tolerance %g)\n", agree, tol)
			if !agree {
				return errResultsDiffer
			}
			return nil
		},
	}
	evalCmd.Flags().Int64("seed", 1, "seed of the random operand values")
	evalCmd.Flags().Float64("tolerance", 1e-8, "relative and absolute tolerance of the comparison")
	_ = v.BindPFlag("seed", evalCmd.Flags().Lookup("seed"))
	_ = v.BindPFlag("tolerance", evalCmd.Flags().Lookup("tolerance"))

	return evalCmd
}

func timedEvaluate(tree *expr.Expr, opts ...eval.Option) (matrix.Matrix, eval.Stats, time.Duration, error) {
	var st eval.Stats
	start := time.Now()
	m, err := eval.Evaluate(tree, append(opts, eval.WithStats(&st))...)

	return m, st, time.Since(start).Round(time.Microsecond), err
}
