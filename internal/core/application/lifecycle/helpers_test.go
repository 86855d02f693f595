package lifecycle_test

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"foodshare/internal/adapters/out/postgres"
	"foodshare/internal/core/application/lifecycle"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/services"
	"foodshare/internal/core/ports"
	"foodshare/internal/pkg/keylock"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var startTime = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	db           *gorm.DB
	factory      ports.UnitOfWorkFactory
	clock        *fakeClock
	orchestrator *lifecycle.Orchestrator
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := postgres.Open(postgres.DatabaseConfig{
		Driver:   postgres.DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", kernel.NewUUID().String()),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	clock := newFakeClock(startTime)
	factory := postgres.NewGormUnitOfWorkFactory(db)
	orchestrator, err := lifecycle.NewOrchestrator(factory, keylock.New(), services.DefaultRewardPolicy(), clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return &harness{db: db, factory: factory, clock: clock, orchestrator: orchestrator}
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()

	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}
