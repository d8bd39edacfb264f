package services

import (
	"context"
	"errors"

	apperrors "autobazaar/errors"
	"autobazaar/models"
	"autobazaar/repositories"
	"autobazaar/services/logger"
	"autobazaar/validator"
)

type RateService struct {
	rates  repositories.RateRepository
	users  repositories.UserRepository
	ads    repositories.AdRepository
	logger logger.Logger
}

type RateServiceOptions struct {
	Rates  repositories.RateRepository
	Users  repositories.UserRepository
	Ads    repositories.AdRepository
	Logger logger.Logger
}

func NewRateService(opts RateServiceOptions) *RateService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &RateService{
		rates:  opts.Rates,
		users:  opts.Users,
		ads:    opts.Ads,
		logger: opts.Logger,
	}
}

// ensureUserAndAd trả NotFound nếu user hoặc ad không tồn tại
func ensureUserAndAd(ctx context.Context, users repositories.UserRepository, ads repositories.AdRepository, userID, adID uint) error {
	if _, err := users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errUserNotFound
		}
		return storageError("Failed to load user", err)
	}
	if _, err := ads.FindByID(ctx, adID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errAdNotFound
		}
		return storageError("Failed to load ad", err)
	}
	return nil
}

// Create lưu điểm 1..5 cho cặp (user, ad), mỗi cặp chỉ một lần
func (s *RateService) Create(ctx context.Context, userID, adID uint, score int) (*models.Rate, error) {
	if err := validator.ValidateScore(score); err != nil {
		return nil, err
	}
	if err := ensureUserAndAd(ctx, s.users, s.ads, userID, adID); err != nil {
		return nil, err
	}

	if _, err := s.rates.FindByUserAndAd(ctx, userID, adID); err == nil {
		return nil, apperrors.Conflict(apperrors.ErrCodeRateExists, "You have already rated this ad", nil)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, storageError("Failed to load rate", err)
	}

	rate := &models.Rate{Score: score, UserID: userID, AdID: adID}
	if err := s.rates.Create(ctx, rate); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, apperrors.Conflict(apperrors.ErrCodeRateExists, "You have already rated this ad", err)
		}
		return nil, storageError("Failed to create rate", err)
	}
	s.logger.Info("user %d rated ad %d with %d", userID, adID, score)
	return rate, nil
}

// GetRate trả về found=false khi user chưa đánh giá ad
func (s *RateService) GetRate(ctx context.Context, adID, userID uint) (int, bool, error) {
	rate, err := s.rates.FindByUserAndAd(ctx, userID, adID)
	if errors.Is(err, repositories.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, storageError("Failed to load rate", err)
	}
	return rate.Score, true, nil
}

func (s *RateService) loadRates(ctx context.Context, adID uint) ([]models.Rate, error) {
	rates, err := s.rates.FindByAdID(ctx, adID)
	if err != nil {
		return nil, storageError("Failed to load rates", err)
	}
	if len(rates) == 0 {
		return nil, apperrors.NotFound(apperrors.ErrCodeRateNotFound, "No rates found for this ad")
	}
	return rates, nil
}

func (s *RateService) GetAverageRate(ctx context.Context, adID uint) (float64, error) {
	rates, err := s.loadRates(ctx, adID)
	if err != nil {
		return 0, err
	}
	return averageScore(rates), nil
}

// GetUniqueUserCount đếm số user khác nhau đã đánh giá ad
func (s *RateService) GetUniqueUserCount(ctx context.Context, adID uint) (int, error) {
	rates, err := s.loadRates(ctx, adID)
	if err != nil {
		return 0, err
	}
	seen := make(map[uint]struct{}, len(rates))
	for _, r := range rates {
		seen[r.UserID] = struct{}{}
	}
	return len(seen), nil
}

func averageScore(rates []models.Rate) float64 {
	if len(rates) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rates {
		sum += r.Score
	}
	return float64(sum) / float64(len(rates))
}
