package commands_test

import (
	"testing"
	"time"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryCommand_StatusOnly(t *testing.T) {
	tests := []struct {
		raw  string
		want delivery.Status
	}{
		{raw: "OutForDelivery", want: delivery.OutForDelivery},
		{raw: "Out for Delivery", want: delivery.OutForDelivery},
		{raw: "out_for_delivery", want: delivery.OutForDelivery},
		{raw: "delivered", want: delivery.Delivered},
		{raw: "Scheduled", want: delivery.Scheduled},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cmd, err := commands.NewUpdateDeliveryCommand(newActor(t, kernel.RoleDonor), kernel.NewUUID(),
				commands.DeliveryUpdate{Status: tt.raw, Agent: "  van-7 "})
			require.NoError(t, err)
			assert.True(t, cmd.HasStatus())
			assert.Equal(t, tt.want, cmd.Status())
			assert.Equal(t, "van-7", cmd.Agent())
			assert.False(t, cmd.HasPosition())
		})
	}
}

func TestNewUpdateDeliveryCommand_PositionOnly(t *testing.T) {
	eta := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	cmd, err := commands.NewUpdateDeliveryCommand(newActor(t, kernel.RoleRecipient), kernel.NewUUID(),
		commands.DeliveryUpdate{Latitude: ptr(48.85), Longitude: ptr(2.35), ETA: &eta})
	require.NoError(t, err)
	assert.False(t, cmd.HasStatus())
	require.True(t, cmd.HasPosition())
	assert.InDelta(t, 48.85, cmd.Position().Latitude(), 1e-9)
	assert.InDelta(t, 2.35, cmd.Position().Longitude(), 1e-9)
	require.NotNil(t, cmd.ETA())
	assert.True(t, eta.Equal(*cmd.ETA()))
}

func TestNewUpdateDeliveryCommand_InvalidInput(t *testing.T) {
	actor := newActor(t, kernel.RoleAdmin)

	t.Run("nothing to update", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryCommand(actor, kernel.NewUUID(), commands.DeliveryUpdate{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryCommand(actor, kernel.NewUUID(),
			commands.DeliveryUpdate{Status: "Teleported"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryCommand(actor, kernel.NewUUID(),
			commands.DeliveryUpdate{Latitude: ptr(91.0), Longitude: ptr(0.0)})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryCommand(actor, kernel.NewUUID(),
			commands.DeliveryUpdate{Latitude: ptr(0.0), Longitude: ptr(-180.5)})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("half a position", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryCommand(actor, kernel.NewUUID(),
			commands.DeliveryUpdate{Latitude: ptr(10.0)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("eta without position", func(t *testing.T) {
		eta := time.Now()
		_, err := commands.NewUpdateDeliveryCommand(actor, kernel.NewUUID(),
			commands.DeliveryUpdate{Status: "Delivered", ETA: &eta})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpdateDeliveryCommand_ZeroValueIsNotConstructed(t *testing.T) {
	err := commands.UpdateDeliveryCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrUpdateDeliveryCommandIsNotConstructed)
}
