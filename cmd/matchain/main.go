// SPDX-License-Identifier: MIT

// Command matchain plans and evaluates matrix multiplication chains.
package main

import "github.com/katalvlaran/matchain/cmd/matchain/cmd"

func main() {
	cmd.Execute()
}
