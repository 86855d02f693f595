package http

import (
	"net/http"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/application/usecases/queries"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateListing handles POST /api/v1/listings.
//
//	@Summary	Publish a listing
//	@Tags		listings
//	@Accept		json
//	@Produce	json
//	@Param		listing	body		NewListing	true	"Listing"
//	@Success	201		{object}	Listing
//	@Failure	403		{object}	Error
//	@Failure	422		{object}	Error
//	@Router		/listings [post]
func (s *Server) CreateListing(ctx echo.Context) error {
	var body NewListing
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateListingCommand(kernel.NewUUID(), actorFrom(ctx), listing.Details{
		Title:          body.Title,
		Description:    body.Description,
		Quantity:       body.Quantity,
		Unit:           body.Unit,
		PickupLocation: body.PickupLocation,
	}, body.ExpiresAt)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.lifecycle.CreateListing(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toListing(created))
}

// GetAvailableListings handles GET /api/v1/listings.
//
//	@Summary	List claimable listings, soonest expiry first
//	@Tags		listings
//	@Produce	json
//	@Param		limit	query		int	false	"Page size"
//	@Param		offset	query		int	false	"Page offset"
//	@Success	200		{array}		Listing
//	@Router		/listings [get]
func (s *Server) GetAvailableListings(ctx echo.Context) error {
	var limit, offset *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &limit); err != nil {
		return badRequest(ctx, "Invalid format for parameter limit")
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &offset); err != nil {
		return badRequest(ctx, "Invalid format for parameter offset")
	}

	query, err := queries.NewGetAvailableListingsQuery(s.clock.Now(), intOrZero(limit), intOrZero(offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	listings, err := s.availableListings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Listing, len(listings))
	for i, l := range listings {
		response[i] = toAvailableListing(l)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetListing handles GET /api/v1/listings/{id}. A listing past its expiry is
// reported, and stored, as Expired.
//
//	@Summary	Get a listing
//	@Tags		listings
//	@Produce	json
//	@Param		id	path		string	true	"Listing ID"	format(uuid)
//	@Success	200	{object}	Listing
//	@Failure	404	{object}	Error
//	@Router		/listings/{id} [get]
func (s *Server) GetListing(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id")
	}

	l, err := s.lifecycle.GetListing(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toListing(l))
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
