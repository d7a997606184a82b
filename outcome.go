// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainsim

// Outcome represents how a consensus round ended.
type Outcome uint8

const (
	Failed Outcome = iota
	Finalized
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}
