package http_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	apihttp "foodshare/internal/adapters/in/http"
	"foodshare/internal/adapters/out/postgres"
	"foodshare/internal/core/application/lifecycle"
	"foodshare/internal/core/application/usecases/queries"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/core/domain/services"
	"foodshare/internal/pkg/keylock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// newLiveAPI serves the real lifecycle over an in-memory SQLite database.
func newLiveAPI(t *testing.T) func(userID kernel.UUID, role string) caller {
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

	orchestrator, err := lifecycle.NewOrchestrator(postgres.NewGormUnitOfWorkFactory(db), keylock.New(),
		services.DefaultRewardPolicy(), fixedClock(), discardLogger())
	require.NoError(t, err)

	server := apihttp.NewServer(
		orchestrator,
		queries.NewGetAvailableListingsQueryHandler(db),
		queries.NewGetUserPointsQueryHandler(db),
		queries.NewGetUserReviewsQueryHandler(db),
		fixedClock(),
		discardLogger(),
	)
	e := apihttp.NewRouter(server, apihttp.RouterConfig{
		SigningKey: signingKey,
		RateLimit:  1000,
		RateBurst:  1000,
		Health:     func(ctx context.Context) error { return postgres.Ping(ctx, db) },
		Logger:     discardLogger(),
	})

	return func(userID kernel.UUID, role string) caller {
		return caller{t: t, e: e, token: tokenFor(t, signingKey, userID, role)}
	}
}

func TestAPI_FullLifecycle(t *testing.T) {
	as := newLiveAPI(t)
	donorID, recipientID := kernel.NewUUID(), kernel.NewUUID()
	donor, recipient := as(donorID, "donor"), as(recipientID, "recipient")

	rec := donor.do(http.MethodPost, "/api/v1/listings", apihttp.NewListing{
		Title:          "Bread",
		Quantity:       5,
		PickupLocation: "12 Baker Street",
		ExpiresAt:      fixedNow.Add(2 * time.Hour),
	})
	requireStatus(t, rec, http.StatusCreated)
	listingID := decode[apihttp.Listing](t, rec).ID

	rec = recipient.do(http.MethodGet, "/api/v1/listings", nil)
	requireStatus(t, rec, http.StatusOK)
	available := decode[[]apihttp.Listing](t, rec)
	require.Len(t, available, 1)
	assert.Equal(t, listingID, available[0].ID)

	rec = recipient.do(http.MethodPost, "/api/v1/claims", apihttp.NewClaim{ListingID: listingID, Notes: "after 5pm"})
	requireStatus(t, rec, http.StatusCreated)
	claimID := decode[apihttp.Claim](t, rec).ID

	requireStatus(t, recipient.do(http.MethodPatch, "/api/v1/claims/"+claimID.String(),
		map[string]bool{"accept": true}), http.StatusForbidden)

	rec = donor.do(http.MethodPatch, "/api/v1/claims/"+claimID.String(), map[string]bool{"accept": true})
	requireStatus(t, rec, http.StatusOK)
	decision := decode[apihttp.ClaimDecisionResult](t, rec)
	assert.Equal(t, "Accepted", decision.Claim.Status)
	require.NotNil(t, decision.Delivery)
	assert.Equal(t, "Scheduled", decision.Delivery.Status)
	deliveryPath := "/api/v1/deliveries/" + decision.Delivery.ID.String()

	rec = donor.do(http.MethodGet, "/api/v1/listings/"+listingID.String(), nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "Claimed", decode[apihttp.Listing](t, rec).Status)

	requireStatus(t, donor.do(http.MethodPatch, deliveryPath, apihttp.DeliveryUpdate{Status: "Out for Delivery"}), http.StatusOK)

	lat, long := 52.52, 13.405
	rec = recipient.do(http.MethodPatch, deliveryPath, apihttp.DeliveryUpdate{Lat: &lat, Long: &long})
	requireStatus(t, rec, http.StatusOK)
	require.NotNil(t, decode[apihttp.Delivery](t, rec).Position)

	rec = donor.do(http.MethodPatch, deliveryPath, apihttp.DeliveryUpdate{Status: "Delivered"})
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "Delivered", decode[apihttp.Delivery](t, rec).Status)

	assert.Equal(t, 10, points(t, donor, donorID))
	assert.Equal(t, 5, points(t, donor, recipientID))

	review := apihttp.NewReview{ClaimID: claimID, RevieweeID: donorID.Bytes(), Rating: 5, Comment: "fresh"}
	requireStatus(t, recipient.do(http.MethodPost, "/api/v1/reviews", review), http.StatusCreated)
	requireStatus(t, recipient.do(http.MethodPost, "/api/v1/reviews", review), http.StatusConflict)

	assert.Equal(t, 15, points(t, donor, donorID))

	rec = donor.do(http.MethodGet, "/api/v1/users/"+donorID.String()+"/reviews", nil)
	requireStatus(t, rec, http.StatusOK)
	received := decode[[]apihttp.Review](t, rec)
	require.Len(t, received, 1)
	assert.Equal(t, recipientID.Bytes(), received[0].ReviewerID)

	requireStatus(t, donor.do(http.MethodPatch, deliveryPath, apihttp.DeliveryUpdate{Status: "OutForDelivery"}), http.StatusConflict)
}

func TestAPI_ClaimOnMissingListingIs404(t *testing.T) {
	as := newLiveAPI(t)
	recipient := as(kernel.NewUUID(), "recipient")

	rec := recipient.do(http.MethodPost, "/api/v1/claims", apihttp.NewClaim{ListingID: uuid.New()})

	requireStatus(t, rec, http.StatusNotFound)
}

func TestAPI_HealthPingsDatabase(t *testing.T) {
	as := newLiveAPI(t)

	requireStatus(t, as(kernel.NewUUID(), "donor").do(http.MethodGet, "/health", nil), http.StatusOK)
}

func points(t *testing.T, c caller, userID kernel.UUID) int {
	t.Helper()

	rec := c.do(http.MethodGet, "/api/v1/users/"+userID.String()+"/points", nil)
	requireStatus(t, rec, http.StatusOK)
	return decode[apihttp.UserPoints](t, rec).Points
}
