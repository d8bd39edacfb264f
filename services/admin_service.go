package services

import (
	"context"
	"sort"
	"time"

	"autobazaar/constants"
	"autobazaar/dto"
	apperrors "autobazaar/errors"
	"autobazaar/models"
	"autobazaar/repositories"
	"autobazaar/services/logger"
)

type AdminService struct {
	users    repositories.UserRepository
	ads      repositories.AdRepository
	rates    repositories.RateRepository
	userSvc  *UserService
	location *time.Location
	now      func() time.Time
	logger   logger.Logger
}

type AdminServiceOptions struct {
	Users       repositories.UserRepository
	Ads         repositories.AdRepository
	Rates       repositories.RateRepository
	UserService *UserService
	Location    *time.Location
	Now         func() time.Time
	Logger      logger.Logger
}

func NewAdminService(opts AdminServiceOptions) *AdminService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AdminService{
		users:    opts.Users,
		ads:      opts.Ads,
		rates:    opts.Rates,
		userSvc:  opts.UserService,
		location: opts.Location,
		now:      opts.Now,
		logger:   opts.Logger,
	}
}

func (s *AdminService) GetUserCount(ctx context.Context) (int64, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return 0, storageError("Failed to count users", err)
	}
	return total, nil
}

func (s *AdminService) GetAdCount(ctx context.Context) (int64, error) {
	total, err := s.ads.Count(ctx)
	if err != nil {
		return 0, storageError("Failed to count ads", err)
	}
	return total, nil
}

// Today trả về ngày hiện tại theo timezone cấu hình, dạng 2006-01-02
func (s *AdminService) Today() string {
	return s.now().In(s.location).Format(constants.DateLayout)
}

// GetTodayAds trả về ads có cột date bằng date; date rỗng nghĩa là hôm nay
func (s *AdminService) GetTodayAds(ctx context.Context, date string) ([]models.Ad, error) {
	if date == "" {
		date = s.Today()
	} else if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, apperrors.BadRequest(apperrors.ErrCodeInvalidFormat, "date must be YYYY-MM-DD", err)
	}
	ads, err := s.ads.FindByDate(ctx, date)
	if err != nil {
		return nil, storageError("Failed to load today's ads", err)
	}
	return ads, nil
}

func (s *AdminService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, storageError("Failed to load users", err)
	}
	return users, nil
}

// GetAllAdsWithAverageRate gắn điểm trung bình (0 nếu chưa có đánh giá) vào mỗi ad, sắp xếp tăng dần
func (s *AdminService) GetAllAdsWithAverageRate(ctx context.Context) ([]dto.AdWithAverageRate, error) {
	ads, err := s.ads.FindAll(ctx)
	if err != nil {
		return nil, storageError("Failed to load ads", err)
	}

	ids := make([]uint, 0, len(ads))
	for _, ad := range ads {
		ids = append(ids, ad.ID)
	}
	rates, err := s.rates.FindByAdIDs(ctx, ids)
	if err != nil {
		return nil, storageError("Failed to load rates", err)
	}

	grouped := make(map[uint][]models.Rate, len(ads))
	for _, r := range rates {
		grouped[r.AdID] = append(grouped[r.AdID], r)
	}

	out := make([]dto.AdWithAverageRate, 0, len(ads))
	for _, ad := range ads {
		out = append(out, dto.AdWithAverageRate{Ad: ad, AverageRate: averageScore(grouped[ad.ID])})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRate < out[j].AverageRate
	})
	return out, nil
}

func (s *AdminService) UpdateUserBannedStatus(ctx context.Context, id uint, isBanned *bool) (*models.User, error) {
	return s.userSvc.UpdateBannedStatus(ctx, id, isBanned)
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id uint, role string) (*models.User, error) {
	return s.userSvc.UpdateRole(ctx, id, role)
}

// DailySummary log các chỉ số tổng quan, được gọi bởi cron job
func (s *AdminService) DailySummary(ctx context.Context) error {
	users, err := s.GetUserCount(ctx)
	if err != nil {
		return err
	}
	ads, err := s.GetAdCount(ctx)
	if err != nil {
		return err
	}
	today, err := s.GetTodayAds(ctx, "")
	if err != nil {
		return err
	}
	s.logger.Info("daily summary %s: users=%d ads=%d today_ads=%d", s.Today(), users, ads, len(today))
	return nil
}
