package commands_test

import (
	"testing"

	"foodshare/internal/core/domain/model/kernel"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()

	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	if err != nil {
		t.Fatalf("new actor: %v", err)
	}
	return actor
}

func ptr[T any](v T) *T {
	return &v
}
