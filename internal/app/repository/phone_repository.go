package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ikkim/phonebook-backend/internal/app/model"
	apperrors "github.com/ikkim/phonebook-backend/internal/errors"
	"github.com/ikkim/phonebook-backend/pkg/logger"
	"gorm.io/gorm"
)

type PhoneRepository interface {
	Create(ctx context.Context, phone *model.Phone) error
	FindByID(ctx context.Context, id uint) (*model.Phone, error)
	// FindByNumber matches the stored number exactly and returns nil, nil on a miss.
	FindByNumber(ctx context.Context, number string) (*model.Phone, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type phoneRepository struct {
	db *gorm.DB
}

func NewPhoneRepository(db *gorm.DB) PhoneRepository {
	return &phoneRepository{db: db}
}

func (r *phoneRepository) Create(ctx context.Context, phone *model.Phone) error {
	logger.Debug("Creating phone in database", map[string]interface{}{
		"phone_number": phone.PhoneNumber,
	})

	if err := r.db.WithContext(ctx).Create(phone).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			logger.Debug("Phone number already stored", map[string]interface{}{
				"phone_number": phone.PhoneNumber,
			})
			return fmt.Errorf("%w: %s", ErrDuplicatePhoneNumber, phone.PhoneNumber)
		}
		logger.Error("Failed to create phone in database", err, map[string]interface{}{
			"phone_number": phone.PhoneNumber,
		})
		return fmt.Errorf("create phone: %w", err)
	}

	logger.Debug("Phone created in database", map[string]interface{}{
		"phone_id":     phone.ID,
		"phone_number": phone.PhoneNumber,
	})
	return nil
}

func (r *phoneRepository) FindByID(ctx context.Context, id uint) (*model.Phone, error) {
	var phone model.Phone
	err := r.db.WithContext(ctx).First(&phone, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		logger.Error("Failed to find phone by ID in database", err, map[string]interface{}{
			"phone_id": id,
		})
		return nil, fmt.Errorf("find phone %d: %w", id, err)
	}
	return &phone, nil
}

func (r *phoneRepository) FindByNumber(ctx context.Context, number string) (*model.Phone, error) {
	logger.Debug("Finding phone by number in database", map[string]interface{}{
		"phone_number": number,
	})

	var phones []model.Phone
	err := r.db.WithContext(ctx).
		Where("phone_number = ?", number).
		Limit(1).
		Find(&phones).Error
	if err != nil {
		logger.Error("Failed to find phone by number in database", err, map[string]interface{}{
			"phone_number": number,
		})
		return nil, fmt.Errorf("find phone by number: %w", err)
	}
	if len(phones) == 0 {
		return nil, nil
	}
	return &phones[0], nil
}

func (r *phoneRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Phone{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to check phone existence", err, map[string]interface{}{
			"phone_id": id,
		})
		return false, fmt.Errorf("check phone %d: %w", id, err)
	}
	return count > 0, nil
}
