package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/phonebook-backend/internal/app/repository"
	"github.com/ikkim/phonebook-backend/internal/app/service"
	"github.com/ikkim/phonebook-backend/internal/db"
	apperrors "github.com/ikkim/phonebook-backend/internal/errors"
	"github.com/ikkim/phonebook-backend/internal/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testAnonymousName = "Anonymous"

func newTestRouter(conn *gorm.DB) *gin.Engine {
	phoneRepo := repository.NewPhoneRepository(conn)
	reviewRepo := repository.NewReviewRepository(conn)
	phoneController := NewPhoneController(service.NewPhoneService(phoneRepo, reviewRepo))
	reviewController := NewReviewController(service.NewReviewService(reviewRepo, phoneRepo, testAnonymousName))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.LoggingMiddleware())

	router.GET("/api/phones", phoneController.SearchPhones)
	router.POST("/api/phones", phoneController.CreatePhone)
	router.GET("/api/phones/:id", phoneController.GetPhoneDetail)
	router.GET("/api/phones/:id/reviews", reviewController.ListReviews)
	router.POST("/api/phones/:id/reviews", reviewController.CreateReview)
	return router
}

func setupControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return newTestRouter(testDB), testDB
}

func performRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apperrors.ErrorResponse {
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
