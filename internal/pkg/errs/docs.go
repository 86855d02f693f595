// Package errs provides the typed errors shared by the FoodShare core and its adapters.
// Every error follows the same shape so that the transport layer can map them
// deterministically with errors.Is and errors.As:
//   - A sentinel error variable (e.g., ErrListingUnavailable)
//   - A struct type carrying the details (e.g., ListingUnavailableError)
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Generic validation errors:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - ObjectNotFoundError
//
// Lifecycle errors:
//   - InvalidTransitionError: the entity is not in a source state for the requested transition
//   - ListingUnavailableError: the listing cannot be claimed (taken, expired or delivered)
//   - NotEligibleError: a review or reward was attempted before the transaction completed
//   - DuplicateReviewError: a review already exists for the (claim, reviewer) pair
//   - InvalidRatingError: a rating outside the 1..5 range
//   - NotPermittedError: the actor may not perform the operation
//   - PersistenceFailureError: a transient storage failure that the caller may retry
package errs
