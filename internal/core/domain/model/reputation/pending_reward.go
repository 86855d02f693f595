package reputation

import (
	"errors"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
)

// MaxLastErrorLength bounds the failure text kept on a pending reward.
const MaxLastErrorLength = 512

var ErrPendingRewardIsNotConstructed = errors.New("PendingReward must be created via NewPendingReward constructor")

// PendingReward is a completion award waiting to be written to the ledger.
// It is stored with the delivery completion and settled after that transaction commits.
type PendingReward struct {
	id        kernel.UUID
	claimID   kernel.UUID
	userID    kernel.UUID
	delta     int
	reason    string
	sourceKey string
	attempts  int
	lastError string
	settledAt *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewPendingReward creates an unsettled reward for party of claimID.
func NewPendingReward(id, claimID, userID kernel.UUID, party Party, delta int, reason string, now time.Time) (*PendingReward, error) {
	p := &PendingReward{createdAt: now, isConstructed: true}

	var claimErr, userErr, deltaErr, reasonErr error
	if claimID.IsZero() {
		claimErr = errs.NewValueIsRequiredError("claim")
	}
	if userID.IsZero() {
		userErr = errs.NewValueIsRequiredError("user")
	}
	if delta == 0 {
		deltaErr = errs.NewValueIsInvalidErrorWithCause("delta", errors.New("point delta must not be zero"))
	}
	if reason = strings.TrimSpace(reason); reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(id.Validate(), claimErr, userErr, deltaErr, reasonErr); err != nil {
		return nil, err
	}

	p.id = id
	p.claimID = claimID
	p.userID = userID
	p.delta = delta
	p.reason = reason
	p.sourceKey = CompletionSourceKey(claimID, party)
	return p, nil
}

// PendingRewardSnapshot is the persisted form used by RestorePendingReward.
type PendingRewardSnapshot struct {
	ID        kernel.UUID
	ClaimID   kernel.UUID
	UserID    kernel.UUID
	Delta     int
	Reason    string
	SourceKey string
	Attempts  int
	LastError string
	SettledAt *time.Time
	CreatedAt time.Time
}

func RestorePendingReward(s PendingRewardSnapshot) *PendingReward {
	return &PendingReward{
		id:            s.ID,
		claimID:       s.ClaimID,
		userID:        s.UserID,
		delta:         s.Delta,
		reason:        s.Reason,
		sourceKey:     s.SourceKey,
		attempts:      s.Attempts,
		lastError:     s.LastError,
		settledAt:     s.SettledAt,
		createdAt:     s.CreatedAt,
		isConstructed: true,
	}
}

func (p *PendingReward) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPendingRewardIsNotConstructed
	}
	return nil
}

func (p *PendingReward) ID() kernel.UUID {
	return p.id
}

func (p *PendingReward) ClaimID() kernel.UUID {
	return p.claimID
}

func (p *PendingReward) UserID() kernel.UUID {
	return p.userID
}

func (p *PendingReward) Delta() int {
	return p.delta
}

func (p *PendingReward) Reason() string {
	return p.reason
}

func (p *PendingReward) SourceKey() string {
	return p.sourceKey
}

func (p *PendingReward) Attempts() int {
	return p.attempts
}

func (p *PendingReward) LastError() string {
	return p.lastError
}

func (p *PendingReward) SettledAt() *time.Time {
	return p.settledAt
}

func (p *PendingReward) CreatedAt() time.Time {
	return p.createdAt
}

func (p *PendingReward) IsSettled() bool {
	return p.settledAt != nil
}

// ToEntry builds the ledger entry this reward settles into.
func (p *PendingReward) ToEntry(entryID kernel.UUID, now time.Time) (*Entry, error) {
	return NewEntry(entryID, p.userID, p.delta, p.reason, p.sourceKey, now)
}

// MarkSettled records successful settlement. Settling twice is a no-op.
func (p *PendingReward) MarkSettled(now time.Time) {
	if p.IsSettled() {
		return
	}
	p.attempts++
	p.lastError = ""
	p.settledAt = &now
}

// RecordFailure counts a failed settlement attempt.
func (p *PendingReward) RecordFailure(cause error) {
	p.attempts++
	if cause == nil {
		p.lastError = ""
		return
	}
	msg := cause.Error()
	if len(msg) > MaxLastErrorLength {
		msg = msg[:MaxLastErrorLength]
	}
	p.lastError = msg
}
