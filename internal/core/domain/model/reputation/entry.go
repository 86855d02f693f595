package reputation

import (
	"errors"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
)

// MaxSourceKeyLength matches the width of the persisted source key column.
const MaxSourceKeyLength = 128

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is a single immutable point award.
type Entry struct {
	id        kernel.UUID
	userID    kernel.UUID
	delta     int
	reason    string
	sourceKey string
	createdAt time.Time

	isConstructed bool
}

// NewEntry validates a non-zero delta, a reason and an optional source key.
func NewEntry(id, userID kernel.UUID, delta int, reason, sourceKey string, now time.Time) (*Entry, error) {
	e := &Entry{createdAt: now, isConstructed: true}

	if err := errors.Join(
		e.setID(id),
		e.setUser(userID),
		e.setDelta(delta),
		e.setReason(reason),
		e.setSourceKey(sourceKey),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry rebuilds a persisted entry. Stored rows passed validation when written.
func RestoreEntry(id, userID kernel.UUID, delta int, reason, sourceKey string, createdAt time.Time) *Entry {
	return &Entry{
		id:            id,
		userID:        userID,
		delta:         delta,
		reason:        reason,
		sourceKey:     sourceKey,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) UserID() kernel.UUID {
	return e.userID
}

func (e *Entry) Delta() int {
	return e.delta
}

func (e *Entry) Reason() string {
	return e.reason
}

// SourceKey returns the idempotency key, or "" for a manual award without one.
func (e *Entry) SourceKey() string {
	return e.sourceKey
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setUser(userID kernel.UUID) error {
	if userID.IsZero() {
		return errs.NewValueIsRequiredError("user")
	}
	e.userID = userID
	return nil
}

func (e *Entry) setDelta(delta int) error {
	if delta == 0 {
		return errs.NewValueIsInvalidErrorWithCause("delta", errors.New("point delta must not be zero"))
	}
	e.delta = delta
	return nil
}

func (e *Entry) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	e.reason = reason
	return nil
}

func (e *Entry) setSourceKey(sourceKey string) error {
	sourceKey = strings.TrimSpace(sourceKey)
	if len(sourceKey) > MaxSourceKeyLength {
		return errs.NewValueIsOutOfRangeError("source key length", len(sourceKey), 0, MaxSourceKeyLength)
	}
	e.sourceKey = sourceKey
	return nil
}
