// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simnet

import (
	"fmt"
	"strings"

	"github.com/luxfi/chainsim"
)

// RoundResult captures one simulation round.
type RoundResult struct {
	// Round is the 1-based round number.
	Round int
	// Result is the protocol's outcome for the round.
	Result *chainsim.Result
	// Height is the chain height after the round.
	Height int
	// PendingTxs is the pool size after the round.
	PendingTxs int
}

// Report is the full record of a simulation run.
type Report struct {
	Algorithm         string
	Config            Config
	Rounds            []RoundResult
	FinalHeight       int
	SuccessfulRounds  int
	FailedRounds      int
	TotalTxsProcessed int
}

// Summary renders the report as a human readable round table.
func (r *Report) Summary() string {
	bar := strings.Repeat("=", 70)
	rule := strings.Repeat("-", 66)

	lines := []string{
		"",
		bar,
		"  Simulation Report: " + r.Algorithm,
		bar,
		fmt.Sprintf("  Rounds executed:       %d", len(r.Rounds)),
		fmt.Sprintf("  Successful rounds:     %d", r.SuccessfulRounds),
		fmt.Sprintf("  Failed rounds:         %d", r.FailedRounds),
		fmt.Sprintf("  Final chain height:    %d", r.FinalHeight),
		fmt.Sprintf("  Total txs processed:   %d", r.TotalTxsProcessed),
		bar,
		"",
		"  Round Details:",
		"  " + rule,
	}
	for _, rr := range r.Rounds {
		status := "FAIL"
		if rr.Result.Success {
			status = "OK"
		}
		proposer := rr.Result.Proposer
		if proposer == "" {
			proposer = "N/A"
		}
		lines = append(lines,
			fmt.Sprintf("  Round %3d: [%4s] proposer=%.8s..  height=%d",
				rr.Round, status, proposer, rr.Height),
			fmt.Sprintf("            %s", rr.Result.Message),
		)
	}
	lines = append(lines, "  "+rule, "")
	return strings.Join(lines, "\n")
}
