package model

import "time"

const (
	MinRating = 1
	MaxRating = 5

	ReviewerNameMaxLength = 100
)

// Review is a rated entry attached to exactly one Phone.
type Review struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	PhoneID      uint      `gorm:"not null;index" json:"phone_id"`
	Rating       int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment      *string   `gorm:"type:text" json:"comment"`
	ReviewerName string    `gorm:"type:varchar(100);not null" json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
