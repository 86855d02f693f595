// Package listing provides the Listing aggregate: a posted quantity of surplus food
// and its availability state.
//
// The package includes:
//   - Listing: identity, owning donor, food details, expiry and claim reference
//   - Status: the forward-only state machine Available -> Claimed -> Delivered, with
//     Expired reachable from Available or Claimed once expires_at has passed
//
// Key business rules:
//   - A listing is created Available with a positive quantity and a future expiry
//   - Only an Available listing can be claimed, and it records the accepted claim
//   - Expired and Delivered are terminal; no transition leaves them
//   - Expiry is evaluated lazily against a clock, never by a background sweep
package listing
