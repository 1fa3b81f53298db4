package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ikkim/phonebook-backend/internal/app/model"
	"github.com/ikkim/phonebook-backend/internal/app/repository"
	"github.com/ikkim/phonebook-backend/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testAnonymousName = "Anonymous"

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

type serviceFixture struct {
	db         *gorm.DB
	phoneRepo  repository.PhoneRepository
	reviewRepo repository.ReviewRepository
	phones     PhoneService
	reviews    ReviewService
}

func setupServiceTest(t *testing.T) *serviceFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	phoneRepo := repository.NewPhoneRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	return &serviceFixture{
		db:         testDB,
		phoneRepo:  phoneRepo,
		reviewRepo: reviewRepo,
		phones:     NewPhoneService(phoneRepo, reviewRepo),
		reviews:    NewReviewService(reviewRepo, phoneRepo, testAnonymousName),
	}
}

func (f *serviceFixture) countPhones(t *testing.T, number string) int64 {
	var count int64
	require.NoError(t, f.db.Model(&model.Phone{}).Where("phone_number = ?", number).Count(&count).Error)
	return count
}

func (f *serviceFixture) countReviews(t *testing.T) int64 {
	var count int64
	require.NoError(t, f.db.Model(&model.Review{}).Count(&count).Error)
	return count
}

// staleLookupRepo hides stored phones from the first FindByNumber call, which is
// what the loser of a concurrent insert observes.
type staleLookupRepo struct {
	repository.PhoneRepository
	mu      sync.Mutex
	lookups int
}

func (r *staleLookupRepo) FindByNumber(ctx context.Context, number string) (*model.Phone, error) {
	r.mu.Lock()
	r.lookups++
	first := r.lookups == 1
	r.mu.Unlock()
	if first {
		return nil, nil
	}
	return r.PhoneRepository.FindByNumber(ctx, number)
}

type failingPhoneRepo struct {
	err error
}

func (r failingPhoneRepo) Create(context.Context, *model.Phone) error { return r.err }
func (r failingPhoneRepo) FindByID(context.Context, uint) (*model.Phone, error) {
	return nil, r.err
}
func (r failingPhoneRepo) FindByNumber(context.Context, string) (*model.Phone, error) {
	return nil, r.err
}
func (r failingPhoneRepo) Exists(context.Context, uint) (bool, error) { return false, r.err }

type failingReviewRepo struct {
	err error
}

func (r failingReviewRepo) Create(context.Context, *model.Review) error { return r.err }
func (r failingReviewRepo) ListByPhoneID(context.Context, uint) ([]model.Review, error) {
	return nil, r.err
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
