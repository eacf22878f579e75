// Package transaction contains the immutable TransactionRecord written for
// every wallet posting. Records form an append-only audit ledger keyed by
// order and by wallet; they are never updated or deleted once written and
// are the durable evidence used for dispute resolution and reconciliation.
package transaction
