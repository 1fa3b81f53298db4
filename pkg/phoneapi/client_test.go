package phoneapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ikkim/phonebook-backend/config"
	"github.com/ikkim/phonebook-backend/internal/app/controller"
	"github.com/ikkim/phonebook-backend/internal/app/repository"
	"github.com/ikkim/phonebook-backend/internal/app/service"
	"github.com/ikkim/phonebook-backend/internal/db"
	"github.com/ikkim/phonebook-backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClientTest(t *testing.T) *Client {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	phoneRepo := repository.NewPhoneRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	cfg := &config.Config{Server: config.ServerConfig{GinMode: "test"}}
	engine := router.NewRouter(
		controller.NewPhoneController(service.NewPhoneService(phoneRepo, reviewRepo)),
		controller.NewReviewController(service.NewReviewService(reviewRepo, phoneRepo, "Anonymous")),
		cfg,
	).Setup()

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func strPtr(s string) *string { return &s }

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewClient(Config{BaseURL: "http://localhost", RetryCount: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestClient_Health(t *testing.T) {
	client := setupClientTest(t)

	status, err := client.CheckServerHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UP", status.Status)
}

func TestClient_SearchAndReview(t *testing.T) {
	client := setupClientTest(t)
	ctx := context.Background()

	found, err := client.SearchPhones(ctx, "0901234567")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].IsNew)
	assert.True(t, *found[0].IsNew)

	again, err := client.SearchPhones(ctx, "0901234567")
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.False(t, *again[0].IsNew)

	none, err := client.SearchPhones(ctx, "hello")
	require.NoError(t, err)
	assert.Empty(t, none)

	review, err := client.AddReview(ctx, found[0].ID, AddReviewRequest{Rating: 4, Comment: strPtr("ok")})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", review.ReviewerName)

	_, err = client.AddReview(ctx, found[0].ID, AddReviewRequest{Rating: 2, ReviewerName: strPtr("Minh")})
	require.NoError(t, err)

	detail, err := client.GetPhoneDetails(ctx, found[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "0901234567", detail.PhoneNumber)
	assert.Len(t, detail.Reviews, 2)
	assert.InDelta(t, 3.0, detail.AvgRating, 0.0001)

	reviews, err := client.ListReviews(ctx, found[0].ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestClient_Errors(t *testing.T) {
	client := setupClientTest(t)
	ctx := context.Background()

	_, err := client.AddPhone(ctx, AddPhoneRequest{PhoneNumber: "0281234567", Name: strPtr("Shop")})
	require.NoError(t, err)

	_, err = client.AddPhone(ctx, AddPhoneRequest{PhoneNumber: "0281234567"})
	require.ErrorIs(t, err, ErrInvalidRequest)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "PHONE_ALREADY_EXISTS", apiErr.Code)

	_, err = client.GetPhoneDetails(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.AddReview(ctx, 999, AddReviewRequest{Rating: 9})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "REVIEW_INVALID_RATING", apiErr.Code)
}

func TestClient_ServerAndNetworkErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"INTERNAL_SERVER_ERROR","message":"try later"}`))
	}))

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.CheckServerHealth(context.Background())
	require.ErrorIs(t, err, ErrServer)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "try later", apiErr.Message)

	srv.Close()
	_, err = client.CheckServerHealth(context.Background())
	assert.ErrorIs(t, err, ErrNetworkError)
}
