package http

import (
	"net/http"

	"foodshare/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// GetDelivery handles GET /api/v1/deliveries/{id}.
//
//	@Summary	Get a delivery
//	@Tags		deliveries
//	@Produce	json
//	@Param		id	path		string	true	"Delivery ID"	format(uuid)
//	@Success	200	{object}	Delivery
//	@Failure	404	{object}	Error
//	@Router		/deliveries/{id} [get]
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id")
	}

	d, err := s.lifecycle.GetDelivery(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDelivery(d))
}

// UpdateDelivery handles PATCH /api/v1/deliveries/{id}. The body may advance the
// status, report a position, or both.
//
//	@Summary	Advance a delivery or report its position
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Delivery ID"	format(uuid)
//	@Param		update	body		DeliveryUpdate	true	"Update"
//	@Success	200		{object}	Delivery
//	@Failure	409		{object}	Error
//	@Failure	422		{object}	Error
//	@Router		/deliveries/{id} [patch]
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter id")
	}

	var body DeliveryUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryCommand(actorFrom(ctx), id, commands.DeliveryUpdate{
		Status:    body.Status,
		Agent:     body.Agent,
		Latitude:  body.Lat,
		Longitude: body.Long,
		ETA:       body.ETA,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.lifecycle.UpdateDelivery(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDelivery(d))
}
