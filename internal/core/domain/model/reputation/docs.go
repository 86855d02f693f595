// Package reputation provides the append-only records of the reputation ledger.
//
// The package includes:
//   - Entry: a point award for a user; totals are always derived by summing entries
//   - Review: a 1..5 star rating left by one party of a completed claim for the other
//   - Rating: the bounded star value of a review
//   - PendingReward: an outbox row for a completion award that is settled into an
//     Entry after the delivery transaction commits
//
// Entries and reviews are never mutated once created. A source key makes an award
// idempotent: replaying it never creates a second entry.
package reputation
