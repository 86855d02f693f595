package ports

import (
	"context"

	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
)

// DeliveryRepository persists delivery aggregates. A claim has at most one delivery.
type DeliveryRepository interface {
	Add(ctx context.Context, d *delivery.Delivery) error
	Update(ctx context.Context, d *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByClaim returns errs.ObjectNotFoundError if the claim was never accepted.
	GetByClaim(ctx context.Context, claimID kernel.UUID) (*delivery.Delivery, error)
}
