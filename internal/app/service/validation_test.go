package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		raw           string
		wantNumber    string
		wantCreatable bool
		wantErr       bool
	}{
		{raw: "", wantErr: true},
		{raw: "   ", wantErr: true},
		{raw: " 0901234567 ", wantNumber: "0901234567", wantCreatable: true},
		{raw: "abc123", wantNumber: "abc123", wantCreatable: true},
		{raw: "abc", wantNumber: "abc", wantCreatable: false},
		{raw: "(+84) 90 123", wantNumber: "(+84) 90 123", wantCreatable: true},
		{raw: strings.Repeat("9", 21), wantNumber: strings.Repeat("9", 21), wantCreatable: false},
		{raw: "\xff0901", wantErr: true},
		{raw: "\x000901", wantErr: true},
		{raw: "090\t1234", wantErr: true},
		{raw: "0901\u200b", wantNumber: "0901\u200b", wantCreatable: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q, err := ValidateSearchQuery(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, q.Number)
			assert.Equal(t, tt.wantCreatable, q.Creatable)
		})
	}
}

func TestValidatePhoneCreate(t *testing.T) {
	phone, err := ValidatePhoneCreate(CreatePhoneInput{
		PhoneNumber: " 0901234567 ",
		Name:        strPtr(""),
		Address:     strPtr(" 5 Hai Ba Trung "),
	})
	require.NoError(t, err)
	assert.Equal(t, "0901234567", phone.PhoneNumber)
	assert.Nil(t, phone.Name)
	require.NotNil(t, phone.Address)
	assert.Equal(t, "5 Hai Ba Trung", *phone.Address)

	_, err = ValidatePhoneCreate(CreatePhoneInput{PhoneNumber: "  "})
	assert.ErrorIs(t, err, ErrPhoneNumberRequired)

	_, err = ValidatePhoneCreate(CreatePhoneInput{PhoneNumber: strings.Repeat("1", 21)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ValidatePhoneCreate(CreatePhoneInput{PhoneNumber: "1", Name: strPtr(strings.Repeat("n", 101))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateReviewInput(t *testing.T) {
	review, err := ValidateReviewInput(7, CreateReviewInput{Rating: intPtr(5)}, "Ẩn danh")
	require.NoError(t, err)
	assert.Equal(t, uint(7), review.PhoneID)
	assert.Equal(t, "Ẩn danh", review.ReviewerName)
	assert.Nil(t, review.Comment)

	_, err = ValidateReviewInput(7, CreateReviewInput{}, "Anonymous")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = ValidateReviewInput(7, CreateReviewInput{Rating: intPtr(0)}, "Anonymous")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = ValidateReviewInput(7, CreateReviewInput{Rating: intPtr(3), ReviewerName: strPtr(strings.Repeat("r", 101))}, "Anonymous")
	assert.ErrorIs(t, err, ErrInvalidInput)

	long := strings.Repeat("c", 10000)
	review, err = ValidateReviewInput(7, CreateReviewInput{Rating: intPtr(3), Comment: &long}, "Anonymous")
	require.NoError(t, err)
	assert.Len(t, *review.Comment, 10000)
}

func TestValidateTextFields(t *testing.T) {
	tests := []struct {
		name    string
		run     func() error
		wantErr bool
	}{
		{
			name: "phone number with invalid utf-8",
			run: func() error {
				_, err := ValidatePhoneCreate(CreatePhoneInput{PhoneNumber: "\xff0901"})
				return err
			},
			wantErr: true,
		},
		{
			name: "phone number with nul",
			run: func() error {
				_, err := ValidatePhoneCreate(CreatePhoneInput{PhoneNumber: "09\x0001"})
				return err
			},
			wantErr: true,
		},
		{
			name: "name with control character",
			run: func() error {
				_, err := ValidatePhoneCreate(CreatePhoneInput{PhoneNumber: "0901", Name: strPtr("Shop\x07")})
				return err
			},
			wantErr: true,
		},
		{
			name: "address with invalid utf-8",
			run: func() error {
				_, err := ValidatePhoneCreate(CreatePhoneInput{PhoneNumber: "0901", Address: strPtr("1 Main \xc3")})
				return err
			},
			wantErr: true,
		},
		{
			name: "reviewer with nul",
			run: func() error {
				_, err := ValidateReviewInput(1, CreateReviewInput{Rating: intPtr(3), ReviewerName: strPtr("An\x00")}, "Anonymous")
				return err
			},
			wantErr: true,
		},
		{
			name: "comment with nul",
			run: func() error {
				_, err := ValidateReviewInput(1, CreateReviewInput{Rating: intPtr(3), Comment: strPtr("bad\x00")}, "Anonymous")
				return err
			},
			wantErr: true,
		},
		{
			name: "multiline comment",
			run: func() error {
				_, err := ValidateReviewInput(1, CreateReviewInput{Rating: intPtr(3), Comment: strPtr("line one\r\n\tline two")}, "Anonymous")
				return err
			},
		},
		{
			name: "vietnamese name",
			run: func() error {
				_, err := ValidatePhoneCreate(CreatePhoneInput{PhoneNumber: "0901", Name: strPtr("Cửa hàng Bánh Mì")})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
