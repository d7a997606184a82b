// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simnet

import (
	"fmt"
	"time"

	"github.com/luxfi/crypto/hash"
	"github.com/luxfi/ids"
)

// Node is a participant in the simulated network.
type Node struct {
	// ID is the canonical identity, derived from the node's name and
	// creation time.
	ID ids.ID
	// Address is the string rendering of ID handed to protocols.
	Address string
	// Balance is the wallet balance.
	Balance float64
	// Stake is the amount currently staked.
	Stake float64
	// Active reports whether the node is online.
	Active bool
	// BlocksProduced counts blocks this node has proposed.
	BlocksProduced int
}

// NewNode returns a node whose address is derived from its name and the
// current time, so repeated runs mint fresh identities.
func NewNode(name string, balance, stake float64) *Node {
	id := hash.ComputeHash256Array([]byte(fmt.Sprintf("%s-%d", name, time.Now().UnixNano())))
	return &Node{
		ID:      id,
		Address: id.String(),
		Balance: balance,
		Stake:   stake,
		Active:  true,
	}
}

func (n *Node) String() string {
	return fmt.Sprintf(
		"Node(%.8s.., balance=%.1f, stake=%.1f, blocks=%d)",
		n.Address, n.Balance, n.Stake, n.BlocksProduced,
	)
}
