package service

import "github.com/ikkim/phonebook-backend/internal/app/model"

// ComputeAverageRating returns the mean rating, or 0 when there are no reviews.
func ComputeAverageRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
