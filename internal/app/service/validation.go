package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ikkim/phonebook-backend/internal/app/model"
	"github.com/ikkim/phonebook-backend/pkg/util"
)

// SearchQuery is a validated search string.
type SearchQuery struct {
	Number string
	// Creatable is false when a miss on Number must not create an entry.
	Creatable bool
}

// CreatePhoneInput is the body of a direct phone creation.
type CreatePhoneInput struct {
	PhoneNumber string  `json:"phone_number"`
	Name        *string `json:"name"`
	Address     *string `json:"address"`
}

// CreateReviewInput is the body of a review submission. Rating is a pointer so
// a missing rating can be told apart from zero.
type CreateReviewInput struct {
	Rating       *int    `json:"rating"`
	Comment      *string `json:"comment"`
	ReviewerName *string `json:"reviewer_name"`
}

func ValidateSearchQuery(raw string) (SearchQuery, error) {
	number := strings.TrimSpace(raw)
	if number == "" {
		return SearchQuery{}, ErrQueryRequired
	}
	if err := checkText("q", number, false); err != nil {
		return SearchQuery{}, err
	}

	return SearchQuery{
		Number:    number,
		Creatable: util.HasPhoneDigits(number) && utf8.RuneCountInString(number) <= model.PhoneNumberMaxLength,
	}, nil
}

func ValidatePhoneCreate(input CreatePhoneInput) (*model.Phone, error) {
	number := strings.TrimSpace(input.PhoneNumber)
	if number == "" {
		return nil, ErrPhoneNumberRequired
	}
	if err := checkText("phone_number", number, false); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(number) > model.PhoneNumberMaxLength {
		return nil, tooLong("phone_number", model.PhoneNumberMaxLength)
	}

	name := optional(input.Name)
	if err := checkOptionalText("name", name, false); err != nil {
		return nil, err
	}
	if name != nil && utf8.RuneCountInString(*name) > model.PhoneNameMaxLength {
		return nil, tooLong("name", model.PhoneNameMaxLength)
	}
	address := optional(input.Address)
	if err := checkOptionalText("address", address, false); err != nil {
		return nil, err
	}
	if address != nil && utf8.RuneCountInString(*address) > model.AddressMaxLength {
		return nil, tooLong("address", model.AddressMaxLength)
	}

	return &model.Phone{
		PhoneNumber: number,
		Name:        name,
		Address:     address,
	}, nil
}

// ValidateReviewInput builds an unsaved review; anonymousName replaces a blank reviewer.
func ValidateReviewInput(phoneID uint, input CreateReviewInput, anonymousName string) (*model.Review, error) {
	if input.Rating == nil || *input.Rating < model.MinRating || *input.Rating > model.MaxRating {
		return nil, ErrInvalidRating
	}

	reviewer := anonymousName
	if name := optional(input.ReviewerName); name != nil {
		reviewer = *name
	}
	if err := checkText("reviewer_name", reviewer, false); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(reviewer) > model.ReviewerNameMaxLength {
		return nil, tooLong("reviewer_name", model.ReviewerNameMaxLength)
	}

	comment := optional(input.Comment)
	if err := checkOptionalText("comment", comment, true); err != nil {
		return nil, err
	}

	return &model.Review{
		PhoneID:      phoneID,
		Rating:       *input.Rating,
		Comment:      comment,
		ReviewerName: reviewer,
	}, nil
}

// optional trims s and maps blank to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// checkText rejects values that cannot be stored and echoed back unchanged:
// invalid UTF-8 and control characters. Multiline text may keep \n, \r and \t.
func checkText(field, s string, multiline bool) error {
	if !utf8.ValidString(s) {
		return invalidText(field, "must be valid UTF-8")
	}
	for _, r := range s {
		if multiline && (r == '\n' || r == '\r' || r == '\t') {
			continue
		}
		if unicode.IsControl(r) {
			return invalidText(field, "must not contain control characters")
		}
	}
	return nil
}

func checkOptionalText(field string, s *string, multiline bool) error {
	if s == nil {
		return nil
	}
	return checkText(field, *s, multiline)
}
