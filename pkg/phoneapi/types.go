package phoneapi

import "time"

type Phone struct {
	ID          uint      `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Name        *string   `json:"name"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	// IsNew is only set on search results.
	IsNew *bool `json:"is_new,omitempty"`
}

type Review struct {
	ID           uint      `json:"id"`
	PhoneID      uint      `json:"phone_id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type PhoneDetail struct {
	Phone
	Reviews   []Review `json:"reviews"`
	AvgRating float64  `json:"avgRating"`
}

type AddPhoneRequest struct {
	PhoneNumber string  `json:"phone_number"`
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
}

type AddReviewRequest struct {
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment,omitempty"`
	ReviewerName *string `json:"reviewer_name,omitempty"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the server's error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
