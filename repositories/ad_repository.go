package repositories

import (
	"context"
	"strings"

	"autobazaar/models"

	"gorm.io/gorm"
)

// searchColumns là các cột được so khớp với từ khóa tìm kiếm
var searchColumns = []string{
	"technical_info", "address", "city", "car_name",
	"additional_info", "model", "brand", "color",
}

// AdFilter là điều kiện tìm kiếm quảng cáo
type AdFilter struct {
	Query  string
	Brand  string
	City   string
	Status *int
}

type AdRepository interface {
	Create(ctx context.Context, ad *models.Ad) error
	FindByID(ctx context.Context, id uint) (*models.Ad, error)
	FindAll(ctx context.Context) ([]models.Ad, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Ad, error)
	FindByDate(ctx context.Context, date string) ([]models.Ad, error)
	Search(ctx context.Context, filter AdFilter) ([]models.Ad, error)
	// UpdateOwned chỉ ghi khi ad thuộc về ownerID; false nếu không có dòng nào bị ảnh hưởng
	UpdateOwned(ctx context.Context, id, ownerID uint, fields map[string]interface{}) (bool, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type adRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ctx context.Context, ad *models.Ad) error {
	return translate(r.db.WithContext(ctx).Create(ad).Error)
}

func (r *adRepository) FindByID(ctx context.Context, id uint) (*models.Ad, error) {
	var ad models.Ad
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ad, nil
}

func (r *adRepository) FindAll(ctx context.Context) ([]models.Ad, error) {
	var ads []models.Ad
	err := r.db.WithContext(ctx).Order("id").Find(&ads).Error
	return ads, translate(err)
}

func (r *adRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Ad, error) {
	var ads []models.Ad
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&ads).Error
	return ads, translate(err)
}

func (r *adRepository) FindByDate(ctx context.Context, date string) ([]models.Ad, error) {
	var ads []models.Ad
	err := r.db.WithContext(ctx).Where("date = ?", date).Find(&ads).Error
	return ads, translate(err)
}

func (r *adRepository) Search(ctx context.Context, filter AdFilter) ([]models.Ad, error) {
	tx := r.db.WithContext(ctx).Model(&models.Ad{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		cond := r.db.Where(searchColumns[0]+" ILIKE ?", pattern)
		for _, col := range searchColumns[1:] {
			cond = cond.Or(col+" ILIKE ?", pattern)
		}
		tx = tx.Where(cond)
	}
	if filter.Brand != "" {
		tx = tx.Where("brand ILIKE ?", filter.Brand)
	}
	if filter.City != "" {
		tx = tx.Where("city ILIKE ?", filter.City)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}

	var ads []models.Ad
	err := tx.Order("id").Find(&ads).Error
	return ads, translate(err)
}

func (r *adRepository) UpdateOwned(ctx context.Context, id, ownerID uint, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Ad{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *adRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Ad{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *adRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Delete(&models.Ad{}, id).Error)
}

func (r *adRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Ad{}).Count(&total).Error
	return total, translate(err)
}
