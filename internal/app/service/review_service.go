package service

import (
	"context"
	"errors"

	"github.com/ikkim/phonebook-backend/internal/app/model"
	"github.com/ikkim/phonebook-backend/internal/app/repository"
	"github.com/ikkim/phonebook-backend/pkg/logger"
)

type ReviewService interface {
	CreateReview(ctx context.Context, phoneID uint, input CreateReviewInput) (*model.Review, error)
	ListReviews(ctx context.Context, phoneID uint) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo    repository.ReviewRepository
	phoneRepo     repository.PhoneRepository
	anonymousName string
}

// NewReviewService builds the review service; anonymousName is stored as the
// reviewer of reviews submitted without one.
func NewReviewService(reviewRepo repository.ReviewRepository, phoneRepo repository.PhoneRepository, anonymousName string) ReviewService {
	return &reviewService{
		reviewRepo:    reviewRepo,
		phoneRepo:     phoneRepo,
		anonymousName: anonymousName,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, phoneID uint, input CreateReviewInput) (*model.Review, error) {
	review, err := ValidateReviewInput(phoneID, input, s.anonymousName)
	if err != nil {
		return nil, err
	}

	if err := s.ensurePhone(ctx, phoneID); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrPhoneReference) {
			return nil, ErrPhoneNotFound
		}
		return nil, storageError("create review", err)
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id": review.ID,
		"phone_id":  phoneID,
		"rating":    review.Rating,
	})
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, phoneID uint) ([]model.Review, error) {
	if err := s.ensurePhone(ctx, phoneID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByPhoneID(ctx, phoneID)
	if err != nil {
		return nil, storageError("list reviews", err)
	}
	return reviews, nil
}

func (s *reviewService) ensurePhone(ctx context.Context, phoneID uint) error {
	exists, err := s.phoneRepo.Exists(ctx, phoneID)
	if err != nil {
		return storageError("check phone", err)
	}
	if !exists {
		logger.Warn("Review target phone not found", map[string]interface{}{
			"phone_id": phoneID,
		})
		return ErrPhoneNotFound
	}
	return nil
}
