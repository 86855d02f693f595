package queries

import (
	"context"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableListingsQueryHandler reads claimable listings straight from the
// listings table. Rows whose expiry passed but were never read again are
// excluded by the expires_at filter, so lazy expiry needs no write here.
type GetAvailableListingsQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableListingsQueryHandler(db *gorm.DB) GetAvailableListingsQueryHandler {
	return GetAvailableListingsQueryHandler{db: db}
}

func (h GetAvailableListingsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableListingsQuery,
) ([]GetAvailableListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listings := make([]GetAvailableListingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			donor_id,
			title,
			description,
			quantity,
			unit,
			pickup_location,
			expires_at,
			created_at
		FROM listings
		WHERE status = ? AND expires_at > ?
		ORDER BY expires_at, id
		LIMIT ? OFFSET ?
	`, int(listing.Available), query.Now(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetAvailableListingsQueryResponse
			id, donorID uuid.UUID
		)

		err = rows.Scan(
			&id,
			&donorID,
			&resp.Title,
			&resp.Description,
			&resp.Quantity,
			&resp.Unit,
			&resp.PickupLocation,
			&resp.ExpiresAt,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DonorID, err = kernel.UUIDFromBytes(donorID[:]); err != nil {
			return nil, err
		}
		resp.ExpiresAt = resp.ExpiresAt.UTC()
		resp.CreatedAt = resp.CreatedAt.UTC()

		listings = append(listings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
