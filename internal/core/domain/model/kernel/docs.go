// Package kernel holds the value objects shared by every FoodShare aggregate.
//
// The package includes:
//   - UUID: identifier for listings, claims, deliveries, reviews and ledger entries
//   - Actor and Role: the acting user and the capability checks derived from the role
//   - Position: a validated latitude/longitude pair reported by a delivery agent
//   - Clock: the source of "now" used by lazy expiry and transition timestamps
//
// Values are immutable once constructed. Zero values are invalid and fail Validate.
package kernel
