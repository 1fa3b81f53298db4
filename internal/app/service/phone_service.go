package service

import (
	"context"
	"errors"

	"github.com/ikkim/phonebook-backend/internal/app/model"
	"github.com/ikkim/phonebook-backend/internal/app/repository"
	"github.com/ikkim/phonebook-backend/pkg/logger"
)

// PhoneDetail is a phone together with its reviews and their mean rating.
type PhoneDetail struct {
	model.Phone
	Reviews   []model.Review `json:"reviews"`
	AvgRating float64        `json:"avgRating"`
}

type PhoneService interface {
	// SearchOrCreate looks up the trimmed query and creates the entry on a miss
	// when the query carries digits. The result holds zero or one phone, with
	// IsNew telling which branch produced it.
	SearchOrCreate(ctx context.Context, query string) ([]model.Phone, error)
	CreatePhone(ctx context.Context, input CreatePhoneInput) (*model.Phone, error)
	GetPhoneByID(ctx context.Context, id uint) (*model.Phone, error)
	GetPhoneDetail(ctx context.Context, id uint) (*PhoneDetail, error)
}

type phoneService struct {
	phoneRepo  repository.PhoneRepository
	reviewRepo repository.ReviewRepository
}

func NewPhoneService(phoneRepo repository.PhoneRepository, reviewRepo repository.ReviewRepository) PhoneService {
	return &phoneService{
		phoneRepo:  phoneRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *phoneService) SearchOrCreate(ctx context.Context, query string) ([]model.Phone, error) {
	q, err := ValidateSearchQuery(query)
	if err != nil {
		return nil, err
	}

	existing, err := s.phoneRepo.FindByNumber(ctx, q.Number)
	if err != nil {
		return nil, storageError("search phone", err)
	}
	if existing != nil {
		return []model.Phone{withIsNew(*existing, false)}, nil
	}

	if !q.Creatable {
		logger.Debug("Search miss on a query that is not a phone number", map[string]interface{}{
			"query": q.Number,
		})
		return []model.Phone{}, nil
	}

	phone := &model.Phone{PhoneNumber: q.Number}
	err = s.phoneRepo.Create(ctx, phone)
	if errors.Is(err, repository.ErrDuplicatePhoneNumber) {
		// lost the insert race to a concurrent search for the same number
		logger.Info("Phone created concurrently, returning stored entry", map[string]interface{}{
			"phone_number": q.Number,
		})
		existing, err = s.phoneRepo.FindByNumber(ctx, q.Number)
		if err != nil {
			return nil, storageError("search phone after conflict", err)
		}
		if existing == nil {
			return nil, storageError("search phone after conflict", repository.ErrRecordNotFound)
		}
		return []model.Phone{withIsNew(*existing, false)}, nil
	}
	if err != nil {
		return nil, storageError("create phone from search", err)
	}

	logger.Info("Phone created from search", map[string]interface{}{
		"phone_id":     phone.ID,
		"phone_number": phone.PhoneNumber,
	})
	return []model.Phone{withIsNew(*phone, true)}, nil
}

func (s *phoneService) CreatePhone(ctx context.Context, input CreatePhoneInput) (*model.Phone, error) {
	phone, err := ValidatePhoneCreate(input)
	if err != nil {
		return nil, err
	}

	if err := s.phoneRepo.Create(ctx, phone); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhoneNumber) {
			logger.Warn("Phone number already exists", map[string]interface{}{
				"phone_number": phone.PhoneNumber,
			})
			return nil, ErrPhoneAlreadyExists
		}
		return nil, storageError("create phone", err)
	}

	logger.Info("Phone created", map[string]interface{}{
		"phone_id":     phone.ID,
		"phone_number": phone.PhoneNumber,
	})
	return phone, nil
}

func (s *phoneService) GetPhoneByID(ctx context.Context, id uint) (*model.Phone, error) {
	phone, err := s.phoneRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrPhoneNotFound
	}
	if err != nil {
		return nil, storageError("get phone", err)
	}
	return phone, nil
}

func (s *phoneService) GetPhoneDetail(ctx context.Context, id uint) (*PhoneDetail, error) {
	phone, err := s.GetPhoneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByPhoneID(ctx, id)
	if err != nil {
		return nil, storageError("list reviews", err)
	}

	return &PhoneDetail{
		Phone:     *phone,
		Reviews:   reviews,
		AvgRating: ComputeAverageRating(reviews),
	}, nil
}

func withIsNew(phone model.Phone, isNew bool) model.Phone {
	phone.IsNew = &isNew
	return phone
}
