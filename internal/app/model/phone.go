package model

import "time"

// Phone is a directory entry keyed by its phone number.
type Phone struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_phones_phone_number" json:"phone_number"`
	Name        *string   `gorm:"type:varchar(100)" json:"name"`
	Address     *string   `gorm:"type:varchar(255)" json:"address"`
	CreatedAt   time.Time `json:"created_at"`

	// IsNew is only set on search results: true when the search created the entry.
	IsNew *bool `gorm:"-" json:"is_new,omitempty"`

	Reviews []Review `gorm:"foreignKey:PhoneID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Phone) TableName() string {
	return "phones"
}

const (
	PhoneNumberMaxLength = 20
	PhoneNameMaxLength   = 100
	AddressMaxLength     = 255
)
