// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package chain implements the ledger primitive shared by every consensus
protocol in this module: transactions, hash linked blocks, and the append
only chain that owns them.

The model is deliberately small. A Transaction's ID and a Block's hash are
SHA-256 digests over a fixed field order, rendered as lowercase hex, so any
two parties given the same fields derive the same digests. Drafts come out
of Blockchain.CreateNextBlock unsealed; a protocol either mines them (nonce
search against a leading zero target) or seals them directly, then offers
them back through Blockchain.AddBlock. AddBlock is the single admission
gate: a block enters history iff it links to the current tip, carries a
hash, and that hash recomputes over the block's contents. Everything else
in the package is read only inspection.

Nothing here is safe for concurrent use. One round driver owns a chain at a
time; the mining search is the only unbounded operation and honors context
cancellation.
*/
package chain
