package errors

// Error codes returned in the "error" field of every failure response.
// Format: CATEGORY_SPECIFIC_DETAIL. The presentation layer maps them to messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"

	// ==================== Phone (PHONE_) ====================
	PhoneNotFound      = "PHONE_NOT_FOUND"
	PhoneAlreadyExists = "PHONE_ALREADY_EXISTS"

	// ==================== Review (REVIEW_) ====================
	ReviewInvalidRating = "REVIEW_INVALID_RATING"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
)
