// Package services provides domain services for rules that span more than one
// aggregate of the FoodShare lifecycle.
//
// The package includes:
//   - ClaimArbiter: decides claims against their listing, keeping at most one
//     active claim per listing and rejecting the siblings of an accepted claim
//   - ReviewEligibility: checks that a review follows a delivered claim and is
//     exchanged between its two parties
//   - RewardPolicy: the point values granted on completion and per review star
//
// Services are pure. They mutate the aggregates handed to them and never touch
// persistence; callers own locking and transactions.
package services
