package repository

import (
	"context"
	"fmt"

	"github.com/ikkim/phonebook-backend/internal/app/model"
	apperrors "github.com/ikkim/phonebook-backend/internal/errors"
	"github.com/ikkim/phonebook-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	// ListByPhoneID returns the phone's reviews newest first; never nil.
	ListByPhoneID(ctx context.Context, phoneID uint) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	logger.Debug("Creating review in database", map[string]interface{}{
		"phone_id": review.PhoneID,
		"rating":   review.Rating,
	})

	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: phone %d", ErrPhoneReference, review.PhoneID)
		}
		logger.Error("Failed to create review in database", err, map[string]interface{}{
			"phone_id": review.PhoneID,
		})
		return fmt.Errorf("create review: %w", err)
	}

	logger.Debug("Review created in database", map[string]interface{}{
		"review_id": review.ID,
		"phone_id":  review.PhoneID,
	})
	return nil
}

func (r *reviewRepository) ListByPhoneID(ctx context.Context, phoneID uint) ([]model.Review, error) {
	reviews := []model.Review{}
	err := r.db.WithContext(ctx).
		Where("phone_id = ?", phoneID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		logger.Error("Failed to list reviews in database", err, map[string]interface{}{
			"phone_id": phoneID,
		})
		return nil, fmt.Errorf("list reviews for phone %d: %w", phoneID, err)
	}

	logger.Debug("Reviews listed from database", map[string]interface{}{
		"phone_id": phoneID,
		"count":    len(reviews),
	})
	return reviews, nil
}
