package kernel

import (
	"errors"
	"fmt"
	"strings"

	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor")

// Role is the capability set an authenticated user acts with.
type Role int

const (
	RoleUnknown Role = iota
	RoleDonor
	RoleRecipient
	RoleNGO
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		RoleDonor:     "donor",
		RoleRecipient: "recipient",
		RoleNGO:       "ngo",
		RoleAdmin:     "admin",
	}
}

// RoleFromString parses the lower-case role names carried by identity tokens.
func RoleFromString(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == needle {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and values outside the enumeration.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the single identity behind every lifecycle call. Role-specific behavior
// is expressed as capability checks on the actor rather than as separate user types.
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor builds an Actor for an authenticated user.
func NewActor(id UUID, role Role) (Actor, error) {
	a := Actor{guard: guard.NewConstructorGuard()}
	if err := errors.Join(a.setID(id), a.setRole(role)); err != nil {
		return Actor{}, err
	}
	return a, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// CanDonate reports whether the actor may publish listings.
func (a Actor) CanDonate() bool {
	return a.role == RoleDonor || a.role == RoleAdmin
}

// CanClaim reports whether the actor may request listings. Recipients and NGOs claim;
// an admin may claim on behalf of either.
func (a Actor) CanClaim() bool {
	return a.role == RoleRecipient || a.role == RoleNGO || a.role == RoleAdmin
}

// Is reports whether the actor is the given user.
func (a Actor) Is(userID UUID) bool {
	return a.id.IsEqual(userID)
}

func (a Actor) String() string {
	return fmt.Sprintf("%s(%s)", a.role, a.id)
}

func (a *Actor) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
