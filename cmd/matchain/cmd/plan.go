// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/matchain/chain"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

var exampleForPlanCmd = `matchain plan 400x300 300x30 30x500 500x400
matchain plan W=64x1024 X=1024x1024 v=1024x1 --table
MATCHAIN_OUTPUT=json matchain plan 10x20 20x10`

// planReport is the machine-readable result of the plan command.
type planReport struct {
	Operands  []string `json:"operands" yaml:"operands"`
	Grouping  string   `json:"grouping" yaml:"grouping"`
	Cost      int64    `json:"cost" yaml:"cost"`
	NaiveCost int64    `json:"naive_cost" yaml:"naive_cost"`
}

func newPlanCmd(v *viper.Viper) *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan SHAPE...",
		Short: "Print the cheapest grouping of a multiplication chain",
		Long: `Plan computes the minimal number of scalar multiplications for the chain
and the grouping that achieves it, next to the cost of left-to-right evaluation.

With --table, each cell (i, j) of the printed table holds the minimal cost of
the sub-chain from operand i to operand j and, in brackets, the operand after
which that sub-chain is split.`,
		Example: exampleForPlanCmd,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := parseChain(args)
			if err != nil {
				return err
			}
			dims, labels := chainDims(shapes)
			tbl, err := chain.NewCostTable(dims)
			if err != nil {
				return errors.Wrap(err, "failed to plan chain")
			}
			report := planReport{
				Grouping:  tbl.Parenthesize(labels),
				Cost:      tbl.Min(),
				NaiveCost: tbl.NaiveCost(),
			}
			for _, s := range shapes {
				report.Operands = append(report.Operands, s.String())
			}
			logrus.WithFields(logrus.Fields{
				"operands": tbl.Len(),
				"cost":     report.Cost,
			}).Debug("planned chain")

			out := cmd.OutOrStdout()
			switch format := v.GetString("output"); format {
			case outputText:
				printPlan(out, report)
				if v.GetBool("table") {
					renderCostTable(out, tbl, labels)
				}
				return nil
			case outputYAML:
				b, err := yaml.Marshal(&report)
				if err != nil {
					return errors.Wrap(err, "failed to marshal yaml")
				}
				_, err = out.Write(b)
				return err
			case outputJSON:
				b, err := json.MarshalIndent(&report, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal json")
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			default:
				return errors.Errorf("output format must be %s, %s or %s, got %q", outputText, outputYAML, outputJSON, format)
			}
		},
	}
	planCmd.Flags().StringP("output", "o", outputText, "output format: text, yaml or json")
	planCmd.Flags().Bool("table", false, "also print the cost table (text output only)")
	_ = v.BindPFlag("output", planCmd.Flags().Lookup("output"))
	_ = v.BindPFlag("table", planCmd.Flags().Lookup("table"))

	return planCmd
}

func printPlan(w io.Writer, r planReport) {
	fmt.Fprintf(w, "grouping:   %s\n", r.Grouping)
	fmt.Fprintf(w, "cost:       %d\n", r.Cost)
	fmt.Fprintf(w, "naive cost: %d\n", r.NaiveCost)
	if r.NaiveCost > 0 {
		fmt.Fprintf(w, "saving:     %.2f%%\n", 100*float64(r.NaiveCost-r.Cost)/float64(r.NaiveCost))
	}
}

// renderCostTable prints the upper triangle of tbl, one row per first operand.
func renderCostTable(w io.Writer, tbl *chain.CostTable, labels []string) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(append([]string{""}, labels...))

	n := tbl.Len()
	for i := 0; i < n; i++ {
		row := make([]string, n+1)
		row[0] = labels[i]
		for j := i; j < n; j++ {
			if i == j {
				row[j+1] = "0"
				continue
			}
			row[j+1] = strconv.FormatInt(tbl.Cost(i, j), 10) + " [" + labels[tbl.Split(i, j)] + "]"
		}
		table.Append(row)
	}
	table.Render()
}
