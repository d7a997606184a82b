// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics tracks consensus round outcomes.
package metrics

import (
	"errors"

	"github.com/luxfi/metric"

	"github.com/luxfi/chainsim"
)

const (
	protocolLabel = "protocol"
	outcomeLabel  = "outcome"
)

var roundLabels = []string{protocolLabel, outcomeLabel}

type Metrics struct {
	rounds         metric.CounterVec
	phases         metric.Counter
	blocksAccepted metric.Counter
	blocksArchived metric.Counter
	txsFinalized   metric.Counter
	chainHeight    metric.Gauge
}

func New(registerer metric.Registerer) (*Metrics, error) {
	m := &Metrics{
		rounds: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "consensus_rounds",
				Help: "Number of consensus rounds run, by protocol and outcome",
			},
			roundLabels,
		),
		phases: metric.NewCounter(metric.CounterOpts{
			Name: "consensus_phases_total",
			Help: "Cumulative number of protocol phases walked across rounds",
		}),
		blocksAccepted: metric.NewCounter(metric.CounterOpts{
			Name: "consensus_blocks_accepted",
			Help: "Number of blocks accepted onto the chain",
		}),
		blocksArchived: metric.NewCounter(metric.CounterOpts{
			Name: "consensus_blocks_archived",
			Help: "Number of accepted blocks written to the archive",
		}),
		txsFinalized: metric.NewCounter(metric.CounterOpts{
			Name: "consensus_txs_finalized",
			Help: "Number of transactions carried by accepted blocks",
		}),
		chainHeight: metric.NewGauge(metric.GaugeOpts{
			Name: "chain_height",
			Help: "Number of blocks on the chain, genesis included",
		}),
	}

	err := errors.Join(
		registerer.Register(metric.AsCollector(m.rounds)),
		registerer.Register(metric.AsCollector(m.phases)),
		registerer.Register(metric.AsCollector(m.blocksAccepted)),
		registerer.Register(metric.AsCollector(m.blocksArchived)),
		registerer.Register(metric.AsCollector(m.txsFinalized)),
		registerer.Register(metric.AsCollector(m.chainHeight)),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MarkRound updates all metrics relating to one finished consensus round.
func (m *Metrics) MarkRound(protocol string, res *chainsim.Result) {
	m.rounds.With(metric.Labels{
		protocolLabel: protocol,
		outcomeLabel:  res.Outcome().String(),
	}).Inc()
	m.phases.Add(float64(res.Rounds))

	if res.Success && res.Block != nil {
		m.blocksAccepted.Inc()
		m.txsFinalized.Add(float64(len(res.Block.Transactions)))
	}
}

// MarkBlockArchived records one block written to the archive.
func (m *Metrics) MarkBlockArchived() {
	m.blocksArchived.Inc()
}

// SetChainHeight records the chain length, genesis included.
func (m *Metrics) SetChainHeight(height uint64) {
	m.chainHeight.Set(float64(height))
}
