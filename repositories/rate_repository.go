package repositories

import (
	"context"

	"autobazaar/models"

	"gorm.io/gorm"
)

type RateRepository interface {
	Create(ctx context.Context, rate *models.Rate) error
	FindByUserAndAd(ctx context.Context, userID, adID uint) (*models.Rate, error)
	FindByAdID(ctx context.Context, adID uint) ([]models.Rate, error)
	FindByAdIDs(ctx context.Context, adIDs []uint) ([]models.Rate, error)
}

type rateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) Create(ctx context.Context, rate *models.Rate) error {
	return translate(r.db.WithContext(ctx).Create(rate).Error)
}

func (r *rateRepository) FindByUserAndAd(ctx context.Context, userID, adID uint) (*models.Rate, error) {
	var rate models.Rate
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND ad_id = ?", userID, adID).
		First(&rate).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rate, nil
}

func (r *rateRepository) FindByAdID(ctx context.Context, adID uint) ([]models.Rate, error) {
	var rates []models.Rate
	err := r.db.WithContext(ctx).Where("ad_id = ?", adID).Find(&rates).Error
	return rates, translate(err)
}

func (r *rateRepository) FindByAdIDs(ctx context.Context, adIDs []uint) ([]models.Rate, error) {
	var rates []models.Rate
	if len(adIDs) == 0 {
		return rates, nil
	}
	err := r.db.WithContext(ctx).Where("ad_id IN ?", adIDs).Find(&rates).Error
	return rates, translate(err)
}
