package http

import (
	"net/http"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RequestClaim handles POST /api/v1/claims.
//
//	@Summary	Request a listing
//	@Tags		claims
//	@Accept		json
//	@Produce	json
//	@Param		claim	body		NewClaim	true	"Claim"
//	@Success	201		{object}	Claim
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/claims [post]
func (s *Server) RequestClaim(ctx echo.Context) error {
	var body NewClaim
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	listingID, err := bodyID(body.ListingID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRequestClaimCommand(kernel.NewUUID(), actorFrom(ctx), listingID, body.Notes, body.PickupAt)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.lifecycle.RequestClaim(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toClaim(c))
}

// GetClaim handles GET /api/v1/claims/{id}.
//
//	@Summary	Get a claim
//	@Tags		claims
//	@Produce	json
//	@Param		id	path		string	true	"Claim ID"	format(uuid)
//	@Success	200	{object}	Claim
//	@Failure	404	{object}	Error
//	@Router		/claims/{id} [get]
func (s *Server) GetClaim(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id")
	}

	c, err := s.lifecycle.GetClaim(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toClaim(c))
}

// DecideClaim handles PATCH /api/v1/claims/{id}. Accepting a claim rejects its
// pending siblings and schedules the delivery.
//
//	@Summary	Accept or reject a claim
//	@Tags		claims
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string			true	"Claim ID"	format(uuid)
//	@Param		decision	body		ClaimDecision	true	"Decision"
//	@Success	200			{object}	ClaimDecisionResult
//	@Failure	403			{object}	Error
//	@Failure	409			{object}	Error
//	@Router		/claims/{id} [patch]
func (s *Server) DecideClaim(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id")
	}

	var body ClaimDecision
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if body.Accept == nil {
		return badRequest(ctx, "Field accept is required")
	}

	cmd, err := commands.NewDecideClaimCommand(actorFrom(ctx), id, *body.Accept)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.lifecycle.DecideClaim(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDecisionResult(result))
}
