// Package delivery contains the DeliveryOrder aggregate and its status state
// machine. The aggregate owns the order's delivery status field and enforces
// guarded transitions: every status change validates the current state, the
// acting user, and the payment precondition before mutating anything.
//
// Ledger postings and rider availability changes that accompany a transition
// are coordinated by the application layer inside one unit of work; this
// package only decides whether a transition is legal.
package delivery
