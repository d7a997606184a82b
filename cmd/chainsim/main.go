// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// chainsim runs consensus algorithm showcases over a simulated blockchain
// network.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/chainsim/cmd/chainsim/run"
	"github.com/luxfi/chainsim/cmd/chainsim/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "chainsim",
		Short: "Simulates blockchain consensus algorithms",
	}
	cmd.AddCommand(
		run.Command(),
		version.Command(),
	)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
