package http

import (
	"net/http"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/application/usecases/queries"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RecordReview handles POST /api/v1/reviews.
//
//	@Summary	Review the other party of a delivered claim
//	@Tags		reputation
//	@Accept		json
//	@Produce	json
//	@Param		review	body		NewReview	true	"Review"
//	@Success	201		{object}	Review
//	@Failure	409		{object}	Error
//	@Failure	422		{object}	Error
//	@Router		/reviews [post]
func (s *Server) RecordReview(ctx echo.Context) error {
	var body NewReview
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	claimID, err := bodyID(body.ClaimID)
	if err != nil {
		return s.fail(ctx, err)
	}
	revieweeID, err := bodyID(body.RevieweeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRecordReviewCommand(kernel.NewUUID(), actorFrom(ctx), claimID, revieweeID, body.Rating, body.Comment)
	if err != nil {
		return s.fail(ctx, err)
	}

	review, err := s.lifecycle.RecordReview(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toReview(review))
}

// AwardPoints handles POST /api/v1/rewards. Replaying a source key returns the
// existing entry with 200.
//
//	@Summary	Award or deduct points manually
//	@Tags		reputation
//	@Accept		json
//	@Produce	json
//	@Param		award	body		NewAward	true	"Award"
//	@Success	201		{object}	Award
//	@Success	200		{object}	Award
//	@Failure	403		{object}	Error
//	@Router		/rewards [post]
func (s *Server) AwardPoints(ctx echo.Context) error {
	var body NewAward
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := bodyID(body.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAwardPointsCommand(kernel.NewUUID(), actorFrom(ctx), userID, body.Delta, body.Reason, body.SourceKey)
	if err != nil {
		return s.fail(ctx, err)
	}

	entry, created, err := s.lifecycle.AwardPoints(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	return ctx.JSON(status, toAward(entry))
}

// GetUserPoints handles GET /api/v1/users/{id}/points.
//
//	@Summary	Total reputation points of a user
//	@Tags		reputation
//	@Produce	json
//	@Param		id	path		string	true	"User ID"	format(uuid)
//	@Success	200	{object}	UserPoints
//	@Router		/users/{id}/points [get]
func (s *Server) GetUserPoints(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id")
	}

	query, err := queries.NewGetUserPointsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	points, err := s.userPoints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UserPoints{
		UserID:  points.UserID.Bytes(),
		Points:  points.Points,
		Entries: points.Entries,
	})
}

// GetUserReviews handles GET /api/v1/users/{id}/reviews.
//
//	@Summary	Reviews a user received, newest first
//	@Tags		reputation
//	@Produce	json
//	@Param		id	path		string	true	"User ID"	format(uuid)
//	@Success	200	{array}		Review
//	@Router		/users/{id}/reviews [get]
func (s *Server) GetUserReviews(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id")
	}

	query, err := queries.NewGetUserReviewsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	reviews, err := s.userReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Review, len(reviews))
	for i, r := range reviews {
		response[i] = toReceivedReview(r)
		response[i].RevieweeID = id.Bytes()
	}
	return ctx.JSON(http.StatusOK, response)
}
