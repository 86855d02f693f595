package http

import (
	"time"

	"foodshare/internal/core/application/lifecycle"
	"foodshare/internal/core/application/usecases/queries"
	"foodshare/internal/core/domain/model/claim"
	"foodshare/internal/core/domain/model/delivery"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/model/listing"
	"foodshare/internal/core/domain/model/reputation"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewListing struct {
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Quantity       int       `json:"quantity"`
	Unit           string    `json:"unit,omitempty"`
	PickupLocation string    `json:"pickup_location,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type Listing struct {
	ID             uuid.UUID  `json:"id"`
	DonorID        uuid.UUID  `json:"donor_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Quantity       int        `json:"quantity"`
	Unit           string     `json:"unit"`
	PickupLocation string     `json:"pickup_location,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
	Status         string     `json:"status"`
	ClaimedBy      *uuid.UUID `json:"claimed_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type NewClaim struct {
	ListingID uuid.UUID  `json:"listing_id"`
	Notes     string     `json:"notes,omitempty"`
	PickupAt  *time.Time `json:"pickup_at,omitempty"`
}

type Claim struct {
	ID          uuid.UUID  `json:"id"`
	ListingID   uuid.UUID  `json:"listing_id"`
	ClaimantID  uuid.UUID  `json:"claimant_id"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	PickupAt    *time.Time `json:"pickup_at,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ClaimDecision struct {
	Accept *bool `json:"accept"`
}

type ClaimDecisionResult struct {
	Claim    Claim       `json:"claim"`
	Delivery *Delivery   `json:"delivery,omitempty"`
	Rejected []uuid.UUID `json:"rejected,omitempty"`
}

type DeliveryUpdate struct {
	Status string     `json:"status,omitempty"`
	Agent  string     `json:"agent,omitempty"`
	Lat    *float64   `json:"lat,omitempty"`
	Long   *float64   `json:"long,omitempty"`
	ETA    *time.Time `json:"eta,omitempty"`
}

type Position struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type Delivery struct {
	ID          uuid.UUID  `json:"id"`
	ClaimID     uuid.UUID  `json:"claim_id"`
	ListingID   uuid.UUID  `json:"listing_id"`
	Status      string     `json:"status"`
	Agent       string     `json:"agent,omitempty"`
	Position    *Position  `json:"position,omitempty"`
	ETA         *time.Time `json:"eta,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type NewReview struct {
	ClaimID    uuid.UUID `json:"claim_id"`
	RevieweeID uuid.UUID `json:"reviewee_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
}

type Review struct {
	ID         uuid.UUID `json:"id"`
	ClaimID    uuid.UUID `json:"claim_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	RevieweeID uuid.UUID `json:"reviewee_id,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type NewAward struct {
	UserID    uuid.UUID `json:"user_id"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	SourceKey string    `json:"source_key,omitempty"`
}

type Award struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	SourceKey string    `json:"source_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserPoints struct {
	UserID  uuid.UUID `json:"user_id"`
	Points  int       `json:"points"`
	Entries int       `json:"entries"`
}

func toListing(l *listing.Listing) Listing {
	details := l.Details()
	return Listing{
		ID:             l.ID().Bytes(),
		DonorID:        l.DonorID().Bytes(),
		Title:          details.Title,
		Description:    details.Description,
		Quantity:       details.Quantity,
		Unit:           l.Unit(),
		PickupLocation: details.PickupLocation,
		ExpiresAt:      l.ExpiresAt(),
		Status:         l.Status().String(),
		ClaimedBy:      optionalID(l.ClaimedBy()),
		CreatedAt:      l.CreatedAt(),
	}
}

func toAvailableListing(r queries.GetAvailableListingsQueryResponse) Listing {
	return Listing{
		ID:             r.ID.Bytes(),
		DonorID:        r.DonorID.Bytes(),
		Title:          r.Title,
		Description:    r.Description,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		PickupLocation: r.PickupLocation,
		ExpiresAt:      r.ExpiresAt,
		Status:         listing.Available.String(),
		CreatedAt:      r.CreatedAt,
	}
}

func toClaim(c *claim.Claim) Claim {
	return Claim{
		ID:          c.ID().Bytes(),
		ListingID:   c.ListingID().Bytes(),
		ClaimantID:  c.ClaimantID().Bytes(),
		Status:      c.Status().String(),
		Notes:       c.Notes(),
		PickupAt:    c.PickupAt(),
		RequestedAt: c.RequestedAt(),
		DecidedAt:   c.DecidedAt(),
		CompletedAt: c.CompletedAt(),
	}
}

func toDecisionResult(result lifecycle.AcceptedClaim) ClaimDecisionResult {
	resp := ClaimDecisionResult{Claim: toClaim(result.Claim)}
	if result.Delivery != nil {
		d := toDelivery(result.Delivery)
		resp.Delivery = &d
	}
	for _, rejected := range result.Rejected {
		resp.Rejected = append(resp.Rejected, rejected.ID().Bytes())
	}
	return resp
}

func toDelivery(d *delivery.Delivery) Delivery {
	resp := Delivery{
		ID:          d.ID().Bytes(),
		ClaimID:     d.ClaimID().Bytes(),
		ListingID:   d.ListingID().Bytes(),
		Status:      d.Status().String(),
		Agent:       d.Agent(),
		ETA:         d.ETA(),
		DeliveredAt: d.DeliveredAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
	if p := d.Position(); p != nil {
		resp.Position = &Position{Lat: p.Latitude(), Long: p.Longitude()}
	}
	return resp
}

func toReview(r *reputation.Review) Review {
	return Review{
		ID:         r.ID().Bytes(),
		ClaimID:    r.ClaimID().Bytes(),
		ReviewerID: r.ReviewerID().Bytes(),
		RevieweeID: r.RevieweeID().Bytes(),
		Rating:     r.Rating().Int(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}

func toReceivedReview(r queries.GetUserReviewsQueryResponse) Review {
	return Review{
		ID:         r.ID.Bytes(),
		ClaimID:    r.ClaimID.Bytes(),
		ReviewerID: r.ReviewerID.Bytes(),
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func toAward(e *reputation.Entry) Award {
	return Award{
		ID:        e.ID().Bytes(),
		UserID:    e.UserID().Bytes(),
		Delta:     e.Delta(),
		Reason:    e.Reason(),
		SourceKey: e.SourceKey(),
		CreatedAt: e.CreatedAt(),
	}
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
