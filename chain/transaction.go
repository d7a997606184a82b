// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/luxfi/crypto/hash"
)

var errNonPositiveAmount = errors.New("transaction amount must be positive")

// Transaction is a transfer of value between two addresses. The ID is
// derived from the other four fields and is never assigned directly.
type Transaction struct {
	ID        string
	Sender    string
	Recipient string
	Amount    float64
	Timestamp int64
}

// NewTransaction builds a transaction and derives its ID. The timestamp is
// unix nanoseconds and is part of the hashed preimage, so repeated transfers
// between the same endpoints still produce distinct IDs. Amounts must be
// strictly positive.
func NewTransaction(sender, recipient string, amount float64, timestamp int64) (*Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: got %v", errNonPositiveAmount, amount)
	}
	tx := &Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Timestamp: timestamp,
	}
	tx.ID = tx.computeID()
	return tx, nil
}

// computeID hashes sender, recipient, amount and timestamp in that order.
// Numbers are rendered in base-10 ASCII ('g' format for the amount) and the
// fields are concatenated without separators.
func (tx *Transaction) computeID() string {
	preimage := tx.Sender +
		tx.Recipient +
		strconv.FormatFloat(tx.Amount, 'g', -1, 64) +
		strconv.FormatInt(tx.Timestamp, 10)
	return hex.EncodeToString(hash.ComputeHash256([]byte(preimage)))
}

func (tx *Transaction) String() string {
	return fmt.Sprintf("%s -> %s: %.2f", tx.Sender, tx.Recipient, tx.Amount)
}
