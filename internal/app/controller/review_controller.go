package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/phonebook-backend/internal/app/service"
	apperrors "github.com/ikkim/phonebook-backend/internal/errors"
	"github.com/ikkim/phonebook-backend/internal/middleware"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview attaches a review to a phone.
// POST /api/phones/:id/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	phoneID, ok := parsePhoneID(c)
	if !ok {
		return
	}

	var input service.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid review request", map[string]interface{}{
			"phone_id": phoneID,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	review, err := ctrl.reviewService.CreateReview(c.Request.Context(), phoneID, input)
	if err != nil {
		respondError(c, err, "create review")
		return
	}

	log.Info("Review created successfully", map[string]interface{}{
		"review_id": review.ID,
		"phone_id":  phoneID,
	})
	c.JSON(http.StatusCreated, review)
}

// ListReviews returns a phone's reviews, newest first.
// GET /api/phones/:id/reviews
func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	phoneID, ok := parsePhoneID(c)
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.ListReviews(c.Request.Context(), phoneID)
	if err != nil {
		respondError(c, err, "list reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}
