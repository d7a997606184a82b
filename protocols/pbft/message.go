// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pbft

// msgType is the phase a protocol message belongs to.
type msgType uint8

const (
	msgPrePrepare msgType = iota
	msgPrepare
	msgCommit
)

// String returns the string representation of the message type.
func (t msgType) String() string {
	switch t {
	case msgPrePrepare:
		return "PRE_PREPARE"
	case msgPrepare:
		return "PREPARE"
	case msgCommit:
		return "COMMIT"
	default:
		return "UNKNOWN"
	}
}

// message is one protocol message exchanged during a round. Delivery is
// synchronous and complete: every emitted message reaches every validator.
type message struct {
	typ       msgType
	sender    string
	blockHash string
	view      int
}
