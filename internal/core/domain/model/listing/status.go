package listing

import (
	"fmt"

	"foodshare/internal/pkg/errs"
)

// Status is the availability state of a listing.
//
// State transitions:
//
//	Available ──> Claimed ──> Delivered
//	    │            │
//	    └──> Expired <┘
//
// Expired and Delivered are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Available listings accept claim requests.
	Available

	// Claimed listings have exactly one accepted claim.
	Claimed

	// Expired listings passed their expiry before being delivered.
	Expired

	// Delivered listings reached their claimant.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Claimed:   "Claimed",
		Expired:   "Expired",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Claimed:   "Claimed",
		Expired:   "Expired",
		Delivered: "Delivered",
	}
}

// StatusFromString parses the names returned by String. Unknown names are rejected.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a listing status", s))
}

// Validate checks that s is one of the four defined states.
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

// IsTerminal reports whether no transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Expired || s == Delivered
}

// IsActive reports whether s is still subject to lazy expiry.
func (s Status) IsActive() bool {
	return s == Available || s == Claimed
}

// Claim transitions Available to Claimed.
func (s Status) Claim() (Status, error) {
	if s != Available {
		return Unknown, errs.NewInvalidTransitionError("listing", s.String(), Claimed.String())
	}
	return Claimed, nil
}

// Expire transitions Available or Claimed to Expired.
func (s Status) Expire() (Status, error) {
	if !s.IsActive() {
		return Unknown, errs.NewInvalidTransitionError("listing", s.String(), Expired.String())
	}
	return Expired, nil
}

// Deliver transitions Claimed to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Claimed {
		return Unknown, errs.NewInvalidTransitionError("listing", s.String(), Delivered.String())
	}
	return Delivered, nil
}
