package http

import (
	"context"
	"log/slog"

	"foodshare/internal/core/application/lifecycle"
	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/application/usecases/queries"
	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/model/reputation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Lifecycle is the write side the server drives. *lifecycle.Orchestrator implements it.
type Lifecycle interface {
	CreateListing(ctx context.Context, cmd commands.CreateListingCommand) (*listing.Listing, error)
	GetListing(ctx context.Context, id kernel.UUID) (*listing.Listing, error)
	RequestClaim(ctx context.Context, cmd commands.RequestClaimCommand) (*claim.Claim, error)
	GetClaim(ctx context.Context, id kernel.UUID) (*claim.Claim, error)
	DecideClaim(ctx context.Context, cmd commands.DecideClaimCommand) (lifecycle.AcceptedClaim, error)
	GetDelivery(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	UpdateDelivery(ctx context.Context, cmd commands.UpdateDeliveryCommand) (*delivery.Delivery, error)
	RecordReview(ctx context.Context, cmd commands.RecordReviewCommand) (*reputation.Review, error)
	AwardPoints(ctx context.Context, cmd commands.AwardPointsCommand) (*reputation.Entry, bool, error)
}

type AvailableListingsHandler interface {
	Handle(ctx context.Context, query queries.GetAvailableListingsQuery) ([]queries.GetAvailableListingsQueryResponse, error)
}

type UserPointsHandler interface {
	Handle(ctx context.Context, query queries.GetUserPointsQuery) (queries.GetUserPointsQueryResponse, error)
}

type UserReviewsHandler interface {
	Handle(ctx context.Context, query queries.GetUserReviewsQuery) ([]queries.GetUserReviewsQueryResponse, error)
}

// Server implements the /api/v1 handlers on top of the lifecycle and the read-side queries.
type Server struct {
	lifecycle Lifecycle

	availableListings AvailableListingsHandler
	userPoints        UserPointsHandler
	userReviews       UserReviewsHandler

	clock  kernel.Clock
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the lifecycle and query handlers.
func NewServer(
	lc Lifecycle,
	availableListings AvailableListingsHandler,
	userPoints UserPointsHandler,
	userReviews UserReviewsHandler,
	clock kernel.Clock,
	logger *slog.Logger,
) *Server {
	return &Server{
		lifecycle:         lc,
		availableListings: availableListings,
		userPoints:        userPoints,
		userReviews:       userReviews,
		clock:             clock,
		logger:            logger.With("component", "http_server"),
	}
}

// RegisterHandlers mounts every route on g. The group is expected to carry IdentityMiddleware.
func (s *Server) RegisterHandlers(g *echo.Group) {
	g.POST("/listings", s.CreateListing)
	g.GET("/listings", s.GetAvailableListings)
	g.GET("/listings/:id", s.GetListing)

	g.POST("/claims", s.RequestClaim)
	g.GET("/claims/:id", s.GetClaim)
	g.PATCH("/claims/:id", s.DecideClaim)

	g.GET("/deliveries/:id", s.GetDelivery)
	g.PATCH("/deliveries/:id", s.UpdateDelivery)

	g.POST("/reviews", s.RecordReview)
	g.GET("/users/:id/points", s.GetUserPoints)
	g.GET("/users/:id/reviews", s.GetUserReviews)

	g.POST("/rewards", s.AwardPoints)
}

// pathID binds the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(id[:])
}

// bodyID converts an identifier decoded from a request body.
func bodyID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
