package mocks

import (
	"context"

	"autobazaar/models"
	"autobazaar/repositories"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UserRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}
func (m *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}
func (m *UserRepository) Save(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *UserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
func (m *UserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type AdRepository struct{ mock.Mock }

func (m *AdRepository) Create(ctx context.Context, ad *models.Ad) error {
	return m.Called(ctx, ad).Error(0)
}
func (m *AdRepository) FindByID(ctx context.Context, id uint) (*models.Ad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}
func (m *AdRepository) FindAll(ctx context.Context) ([]models.Ad, error) {
	args := m.Called(ctx)
	ads, _ := args.Get(0).([]models.Ad)
	return ads, args.Error(1)
}
func (m *AdRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Ad, error) {
	args := m.Called(ctx, userID)
	ads, _ := args.Get(0).([]models.Ad)
	return ads, args.Error(1)
}
func (m *AdRepository) FindByDate(ctx context.Context, date string) ([]models.Ad, error) {
	args := m.Called(ctx, date)
	ads, _ := args.Get(0).([]models.Ad)
	return ads, args.Error(1)
}
func (m *AdRepository) Search(ctx context.Context, f repositories.AdFilter) ([]models.Ad, error) {
	args := m.Called(ctx, f)
	ads, _ := args.Get(0).([]models.Ad)
	return ads, args.Error(1)
}
func (m *AdRepository) UpdateOwned(ctx context.Context, id, ownerID uint, fields map[string]interface{}) (bool, error) {
	args := m.Called(ctx, id, ownerID, fields)
	return args.Bool(0), args.Error(1)
}
func (m *AdRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}
func (m *AdRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
func (m *AdRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type RateRepository struct{ mock.Mock }

func (m *RateRepository) Create(ctx context.Context, r *models.Rate) error {
	return m.Called(ctx, r).Error(0)
}
func (m *RateRepository) FindByUserAndAd(ctx context.Context, userID, adID uint) (*models.Rate, error) {
	args := m.Called(ctx, userID, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rate), args.Error(1)
}
func (m *RateRepository) FindByAdID(ctx context.Context, adID uint) ([]models.Rate, error) {
	args := m.Called(ctx, adID)
	rates, _ := args.Get(0).([]models.Rate)
	return rates, args.Error(1)
}
func (m *RateRepository) FindByAdIDs(ctx context.Context, adIDs []uint) ([]models.Rate, error) {
	args := m.Called(ctx, adIDs)
	rates, _ := args.Get(0).([]models.Rate)
	return rates, args.Error(1)
}

type CommentRepository struct{ mock.Mock }

func (m *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}
func (m *CommentRepository) FindByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}
func (m *CommentRepository) FindByUserAndAd(ctx context.Context, userID, adID uint) (*models.Comment, error) {
	args := m.Called(ctx, userID, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}
func (m *CommentRepository) FindByAdID(ctx context.Context, adID uint) ([]models.Comment, error) {
	args := m.Called(ctx, adID)
	comments, _ := args.Get(0).([]models.Comment)
	return comments, args.Error(1)
}
func (m *CommentRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
