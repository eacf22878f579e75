// Package wallet contains the Wallet aggregate. A wallet tracks an owner's
// spendable balance and escrow balance (funds held against an in-flight
// order). The single mutation, PostAdjustment, applies a signed delta to
// each balance and rejects any posting that would drive either negative,
// so no observer can ever read a negative balance.
//
// The package knows nothing about delivery semantics; the application layer
// decides which postings accompany which order transitions.
package wallet
