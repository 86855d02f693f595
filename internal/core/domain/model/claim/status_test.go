package claim_test

import (
	"errors"
	"testing"

	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, claim.Pending.IsActive())
	assert.True(t, claim.Accepted.IsActive())
	assert.False(t, claim.Rejected.IsActive())
	assert.False(t, claim.Completed.IsActive())

	assert.True(t, claim.Rejected.IsTerminal())
	assert.True(t, claim.Completed.IsTerminal())
	assert.False(t, claim.Pending.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	s, err := claim.StatusFromString("Completed")
	require.NoError(t, err)
	assert.Equal(t, claim.Completed, s)

	_, err = claim.StatusFromString("Cancelled")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Properties(t *testing.T) {
	steps := map[string]func(claim.Status) (claim.Status, error){
		"accept":   claim.Status.Accept,
		"reject":   claim.Status.Reject,
		"complete": claim.Status.Complete,
	}
	names := []string{"accept", "reject", "complete"}

	rapid.Check(t, func(t *rapid.T) {
		status := claim.Pending
		seen := map[claim.Status]bool{status: true}

		for _, name := range rapid.SliceOf(rapid.SampledFrom(names)).Draw(t, "ops") {
			next, err := steps[name](status)
			if err != nil {
				if !errors.Is(err, errs.ErrInvalidTransition) {
					t.Fatalf("unexpected error kind: %v", err)
				}
				continue
			}
			if status.IsTerminal() {
				t.Fatalf("%s left terminal state to %s", status, next)
			}
			if seen[next] {
				t.Fatalf("state %s revisited", next)
			}
			seen[next] = true
			status = next
		}
	})
}
