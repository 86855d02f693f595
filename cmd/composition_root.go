package cmd

import (
	"context"
	"fmt"
	"log/slog"

	apihttp "foodshare/internal/adapters/in/http"
	"foodshare/internal/adapters/out/postgres"
	"foodshare/internal/core/application/lifecycle"
	"foodshare/internal/core/application/usecases/queries"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/jobs"
	"foodshare/internal/pkg/keylock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived dependencies of the process.
type CompositionRoot struct {
	cfg          Config
	gormDB       *gorm.DB
	clock        kernel.Clock
	logger       *slog.Logger
	orchestrator *lifecycle.Orchestrator
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	clock := kernel.SystemClock{}

	orchestrator, err := lifecycle.NewOrchestrator(
		postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithLogger(logger)),
		keylock.New(),
		cfg.RewardPolicy(),
		clock,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lifecycle orchestrator: %w", err)
	}

	return &CompositionRoot{
		cfg:          cfg,
		gormDB:       gormDB,
		clock:        clock,
		logger:       logger,
		orchestrator: orchestrator,
	}, nil
}

func (c *CompositionRoot) Orchestrator() *lifecycle.Orchestrator {
	return c.orchestrator
}

func (c *CompositionRoot) CreateGetAvailableListingsQueryHandler() queries.GetAvailableListingsQueryHandler {
	return queries.NewGetAvailableListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserPointsQueryHandler() queries.GetUserPointsQueryHandler {
	return queries.NewGetUserPointsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserReviewsQueryHandler() queries.GetUserReviewsQueryHandler {
	return queries.NewGetUserReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orchestrator, c.cfg.SettlementJob(), c.logger)
}

// CreateRouter wires the HTTP server and its middleware.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := apihttp.NewServer(
		c.orchestrator,
		c.CreateGetAvailableListingsQueryHandler(),
		c.CreateGetUserPointsQueryHandler(),
		c.CreateGetUserReviewsQueryHandler(),
		c.clock,
		c.logger,
	)

	return apihttp.NewRouter(server, apihttp.RouterConfig{
		SigningKey: []byte(c.cfg.Auth.JWTSigningKey),
		RateLimit:  c.cfg.HTTP.RateLimit,
		RateBurst:  c.cfg.HTTP.RateBurst,
		Health: func(ctx context.Context) error {
			return postgres.Ping(ctx, c.gormDB)
		},
		Logger: c.logger,
	})
}
