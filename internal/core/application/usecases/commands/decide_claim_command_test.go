package commands_test

import (
	"testing"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecideClaimCommand(t *testing.T) {
	donor := newActor(t, kernel.RoleDonor)
	claimID := kernel.NewUUID()

	cmd, err := commands.NewDecideClaimCommand(donor, claimID, true)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, donor, cmd.Actor())
	assert.Equal(t, claimID, cmd.ClaimID())
	assert.True(t, cmd.Accept())

	reject, err := commands.NewDecideClaimCommand(donor, claimID, false)
	require.NoError(t, err)
	assert.False(t, reject.Accept())
}

func TestNewDecideClaimCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewDecideClaimCommand(kernel.Actor{}, kernel.UUID{}, true)
	require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDecideClaimCommand_ZeroValueIsNotConstructed(t *testing.T) {
	err := commands.DecideClaimCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrDecideClaimCommandIsNotConstructed)
}
