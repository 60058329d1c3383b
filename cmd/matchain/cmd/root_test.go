// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/expr"
)

// run executes a fresh command tree with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestPlan_Text(t *testing.T) {
	out, err := run(t, "plan", "400x300", "300x30", "30x500", "500x400")
	require.NoError(t, err)
	assert.Contains(t, out, "grouping:   (([A] * [B]) * ([C] * [D]))\n")
	assert.Contains(t, out, "cost:       14400000\n")
	assert.Contains(t, out, "naive cost: 89600000\n")
	assert.Contains(t, out, "saving:     83.93%\n")
}

func TestPlan_SingleOperand(t *testing.T) {
	out, err := run(t, "plan", "X=7x9")
	require.NoError(t, err)
	assert.Contains(t, out, "grouping:   [X]\n")
	assert.Contains(t, out, "cost:       0\n")
	assert.NotContains(t, out, "saving")
}

func TestPlan_Table(t *testing.T) {
	out, err := run(t, "plan", "10x1", "1x100", "100x10", "--table")
	require.NoError(t, err)
	// A·(B·C): 1000 + 100.
	assert.Contains(t, out, "grouping:   ([A] * ([B] * [C]))\n")
	assert.Contains(t, out, "1100 [A]")
	assert.Contains(t, out, "1000 [B]")
}

func TestPlan_JSON(t *testing.T) {
	out, err := run(t, "plan", "10x20", "20x10", "-o", "json")
	require.NoError(t, err)

	var got planReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, planReport{
		Operands:  []string{"A=10x20", "B=20x10"},
		Grouping:  "([A] * [B])",
		Cost:      2000,
		NaiveCost: 2000,
	}, got)
}

func TestPlan_OutputFromEnv(t *testing.T) {
	t.Setenv("MATCHAIN_OUTPUT", "yaml")
	out, err := run(t, "plan", "10x20", "20x10")
	require.NoError(t, err)

	var got planReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(2000), got.Cost)
}

func TestPlan_OutputFromConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "matchain.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: json\n"), 0o600))

	out, err := run(t, "plan", "--config", cfg, "10x20", "20x10")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
}

func TestPlan_Errors(t *testing.T) {
	_, err := run(t, "plan", "3x4", "5x6")
	require.Error(t, err)
	assert.True(t, errors.Is(err, expr.ErrDimensionMismatch))

	_, err = run(t, "plan", "3x4", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `got "xml"`)

	_, err = run(t, "plan")
	require.Error(t, err)

	_, err = run(t, "plan", "3000000x3000000", "3000000x3000000", "3000000x1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, chain.ErrCostOverflow))

	_, err = run(t, "plan", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "3x4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "40x30", "30x3", "3x50", "50x40", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "grouping:  (([A] * [B]) * ([C] * [D]))\n")
	assert.Contains(t, out, "naive:     89600 multiplies")
	assert.Contains(t, out, "optimized: 14400 multiplies")
	assert.Contains(t, out, "agree:     true")
}
