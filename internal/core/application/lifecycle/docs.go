// Package lifecycle sequences the donation lifecycle of a listing:
// posting, claiming, delivery and the reputation effects of a completed hand-over.
//
// The components (ListingStore, ClaimCoordinator, DeliveryTracker and
// ReputationLedger) each own one part of the state and operate on the
// repositories of a transaction they are handed. They never call each other
// across component lines, with one exception: the coordinator resolves listings
// through the ListingStore so lazy expiry is applied consistently.
//
// The Orchestrator is the only entry point for adapters. For every operation that
// mutates a listing it acquires the listing's keyed lock, then begins a
// transaction, and only then runs the components. Reward settlement happens after
// commit and never fails the operation that triggered it.
package lifecycle
