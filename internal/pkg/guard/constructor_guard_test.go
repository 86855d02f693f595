package guard_test

import (
	"errors"
	"testing"

	"foodshare/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_validates", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type decideCommand struct {
		accept bool
		guard  guard.ConstructorGuard
	}
	errNotConstructed := errors.New("decideCommand must be created via newDecideCommand")

	newDecideCommand := func(accept bool) decideCommand {
		return decideCommand{accept: accept, guard: guard.NewConstructorGuard()}
	}
	validate := func(c decideCommand) error {
		return c.guard.Validate(errNotConstructed)
	}

	t.Run("constructor_built_command_is_valid", func(t *testing.T) {
		cmd := newDecideCommand(true)

		require.NoError(t, validate(cmd))
		assert.True(t, cmd.accept)
	})

	t.Run("struct_literal_command_is_rejected", func(t *testing.T) {
		cmd := decideCommand{accept: true}

		require.ErrorIs(t, validate(cmd), errNotConstructed)
	})

	t.Run("copies_keep_construction_state", func(t *testing.T) {
		original := newDecideCommand(false)
		copied := original

		require.NoError(t, validate(copied))
	})
}
