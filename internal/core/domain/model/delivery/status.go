package delivery

import (
	"fmt"

	"foodshare/internal/pkg/errs"
)

// Status is the progress of a delivery. Values are ordered along the only allowed
// direction of travel.
type Status int

const (
	Unknown Status = iota
	Scheduled
	OutForDelivery
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Scheduled:      "Scheduled",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled:      "Scheduled",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// StatusFromString parses the names returned by String.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a delivery status", s))
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

func (s Status) IsTerminal() bool {
	return s == Delivered
}

// AdvanceTo returns to if it lies strictly ahead of s.
//
// Valid transitions:
//   - Scheduled -> OutForDelivery
//   - Scheduled -> Delivered (self pickup)
//   - OutForDelivery -> Delivered
//
// Everything else, including a move to the current state, is an invalid transition.
func (s Status) AdvanceTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if err := s.Validate(); err != nil || to <= s {
		return Unknown, errs.NewInvalidTransitionError("delivery", s.String(), to.String())
	}
	return to, nil
}
