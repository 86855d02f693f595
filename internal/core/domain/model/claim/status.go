package claim

import (
	"fmt"

	"foodshare/internal/pkg/errs"
)

// Status is the decision state of a claim.
//
//	Pending ──> Accepted ──> Completed
//	   │
//	   └──> Rejected
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	Rejected
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Completed: "Completed",
	}
}

// StatusFromString parses the names returned by String.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a claim status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the claim still blocks other claims on its listing.
func (s Status) IsActive() bool {
	return s == Pending || s == Accepted
}

// IsTerminal reports whether no transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed
}

// Accept transitions Pending to Accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("claim", s.String(), Accepted.String())
	}
	return Accepted, nil
}

// Reject transitions Pending to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("claim", s.String(), Rejected.String())
	}
	return Rejected, nil
}

// Complete transitions Accepted to Completed.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewInvalidTransitionError("claim", s.String(), Completed.String())
	}
	return Completed, nil
}
