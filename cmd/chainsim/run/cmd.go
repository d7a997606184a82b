// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package run

import (
	"fmt"

	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/luxfi/chainsim/simnet"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Runs consensus scenarios over a simulated network",
		RunE:  runFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func runFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	ctx := c.Context()
	logger := log.Root()
	cfg := simnet.Config{
		Rounds:      config.Rounds,
		TxsPerRound: config.TxsPerRound,
		Seed:        config.Seed,
	}

	if config.Algorithm == "all" {
		reports, err := simnet.RunAllScenarios(ctx, cfg, logger)
		if err != nil {
			return err
		}
		for _, report := range reports {
			fmt.Println(report.Summary())
		}
		return nil
	}

	var report *simnet.Report
	switch config.Algorithm {
	case "pow":
		report, err = simnet.RunPoWScenario(ctx, cfg, config.Nodes, config.Difficulty, logger)
	case "pos":
		report, err = simnet.RunPoSScenario(ctx, cfg, config.Nodes, logger)
	case "dpos":
		report, err = simnet.RunDPoSScenario(ctx, cfg, config.Nodes, config.Delegates, logger)
	case "pbft":
		report, err = simnet.RunPBFTScenario(ctx, cfg, config.Nodes, config.Byzantine, logger)
	}
	if err != nil {
		return err
	}

	fmt.Println(report.Summary())
	return nil
}
