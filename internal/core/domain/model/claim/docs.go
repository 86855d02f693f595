// Package claim provides the Claim aggregate: a claimant's request to receive a
// specific listing, and the decision taken on it by the listing's donor.
//
// Claim status follows Pending -> Accepted -> Completed, or Pending -> Rejected.
// Rejected and Completed are terminal. Rules that span several claims of one
// listing (a single active claim, auto-rejection of siblings) belong to the
// claim arbitration service, not to this package.
package claim
