package services

import (
	"context"
	"errors"
	"io"

	"autobazaar/dto"
	apperrors "autobazaar/errors"
	"autobazaar/models"
	"autobazaar/repositories"
	"autobazaar/services/logger"

	"github.com/lib/pq"
)

var errAdNotFound = apperrors.NotFound(apperrors.ErrCodeAdNotFound, "Ad not found")

type AdService struct {
	ads      repositories.AdRepository
	users    repositories.UserRepository
	uploader Uploader
	index    AdIndex
	logger   logger.Logger
}

// AdServiceOptions: Index có thể nil, khi đó tìm kiếm chỉ dùng database
type AdServiceOptions struct {
	Ads      repositories.AdRepository
	Users    repositories.UserRepository
	Uploader Uploader
	Index    AdIndex
	Logger   logger.Logger
}

func NewAdService(opts AdServiceOptions) *AdService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &AdService{
		ads:      opts.Ads,
		users:    opts.Users,
		uploader: opts.Uploader,
		index:    opts.Index,
		logger:   opts.Logger,
	}
}

// syncIndex cập nhật chỉ mục tìm kiếm; lỗi chỉ được log vì database là nguồn chính
func (s *AdService) syncIndex(ctx context.Context, ad *models.Ad) {
	if s.index == nil || ad == nil {
		return
	}
	if err := s.index.Index(ctx, ad); err != nil {
		s.logger.Error("sync ad %d to search index: %v", ad.ID, err)
	}
}

// Create kiểm tra user tồn tại rồi mới lưu ad
func (s *AdService) Create(ctx context.Context, req dto.CreateAdRequest) (*models.Ad, error) {
	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, storageError("Failed to load user", err)
	}

	ad := req.ToModel()
	if err := s.ads.Create(ctx, &ad); err != nil {
		return nil, storageError("Failed to create ad", err)
	}
	s.logger.Info("ad %d created by user %d", ad.ID, ad.UserID)
	s.syncIndex(ctx, &ad)
	return &ad, nil
}

func (s *AdService) FindOne(ctx context.Context, id uint) (*models.Ad, error) {
	ad, err := s.ads.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errAdNotFound
	}
	if err != nil {
		return nil, storageError("Failed to load ad", err)
	}
	return ad, nil
}

func (s *AdService) FindAll(ctx context.Context) ([]models.Ad, error) {
	ads, err := s.ads.FindAll(ctx)
	if err != nil {
		return nil, storageError("Failed to load ads", err)
	}
	return ads, nil
}

func (s *AdService) FindByUserID(ctx context.Context, userID uint) ([]models.Ad, error) {
	ads, err := s.ads.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storageError("Failed to load ads", err)
	}
	if len(ads) == 0 {
		return nil, apperrors.NotFound(apperrors.ErrCodeAdNotFound, "No ads found for this user")
	}
	return ads, nil
}

// Update chỉ cho phép chủ sở hữu sửa. Lệnh ghi có điều kiện user_id nên
// việc đổi chủ giữa lúc đọc và lúc ghi cũng bị từ chối.
func (s *AdService) Update(ctx context.Context, id uint, req dto.UpdateAdRequest) (*models.Ad, error) {
	ad, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad.UserID != req.UserID {
		return nil, apperrors.Forbidden(apperrors.ErrCodeNotAdOwner, "You are not allowed to update this ad")
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return ad, nil
	}

	ok, err := s.ads.UpdateOwned(ctx, id, req.UserID, fields)
	if err != nil {
		return nil, storageError("Failed to update ad", err)
	}
	if !ok {
		return nil, apperrors.Forbidden(apperrors.ErrCodeNotAdOwner, "You are not allowed to update this ad")
	}
	return s.reload(ctx, id)
}

func (s *AdService) reload(ctx context.Context, id uint) (*models.Ad, error) {
	ad, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	s.syncIndex(ctx, ad)
	return ad, nil
}

func (s *AdService) Remove(ctx context.Context, id uint) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.ads.Delete(ctx, id); err != nil {
		return storageError("Failed to delete ad", err)
	}
	if s.index != nil {
		if err := s.index.Delete(ctx, id); err != nil {
			s.logger.Error("remove ad %d from search index: %v", id, err)
		}
	}
	return nil
}

func (s *AdService) ChangeStatus(ctx context.Context, id uint, status int) (*models.Ad, error) {
	ad, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ads.UpdateFields(ctx, id, map[string]interface{}{"status": status}); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errAdNotFound
		}
		return nil, storageError("Failed to update ad status", err)
	}
	ad.Status = status
	s.syncIndex(ctx, ad)
	return ad, nil
}

// Search ưu tiên chỉ mục tìm kiếm nếu có. Với database, q được so khớp (không phân
// biệt hoa thường) trên các cột mô tả, OR giữa các cột; khi không có kết quả thì
// dùng xếp hạng gần đúng trên các ads thỏa bộ lọc.
func (s *AdService) Search(ctx context.Context, q dto.SearchAdQuery) ([]models.Ad, error) {
	if s.index != nil {
		ads, err := s.index.Search(ctx, q)
		if err == nil {
			return ads, nil
		}
		s.logger.Error("search index unavailable, falling back to database: %v", err)
	}

	filter := repositories.AdFilter{Query: q.Q, Brand: q.Brand, City: q.City, Status: q.Status}
	ads, err := s.ads.Search(ctx, filter)
	if err != nil {
		return nil, storageError("Failed to search ads", err)
	}
	if len(ads) > 0 || q.Q == "" {
		return ads, nil
	}

	filter.Query = ""
	candidates, err := s.ads.Search(ctx, filter)
	if err != nil {
		return nil, storageError("Failed to search ads", err)
	}
	ranked := fuzzyRank(q.Q, candidates)
	s.logger.Debug("fuzzy search %q matched %d of %d ads", q.Q, len(ranked), len(candidates))
	return ranked, nil
}

// AddPictures upload ảnh lên media storage và gắn URL vào gallery của ad
func (s *AdService) AddPictures(ctx context.Context, id, requesterID uint, files []io.Reader) (*models.Ad, error) {
	if len(files) == 0 {
		return nil, apperrors.BadRequest(apperrors.ErrCodeRequiredField, "No files uploaded", nil)
	}
	ad, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad.UserID != requesterID {
		return nil, apperrors.Forbidden(apperrors.ErrCodeNotAdOwner, "You are not allowed to update this ad")
	}

	gallery := append(pq.StringArray{}, ad.Gallery...)
	for _, file := range files {
		url, err := s.uploader.Upload(ctx, file)
		if err != nil {
			s.logger.Error("upload for ad %d failed: %v", id, err)
			return nil, apperrors.NewAppError(apperrors.KindInternal, apperrors.ErrCodeUploadFailed, "Upload failed", err)
		}
		gallery = append(gallery, url)
	}

	fields := map[string]interface{}{"gallery": gallery}
	if ad.PicsURL == "" {
		fields["pics_url"] = gallery[0]
	}
	ok, err := s.ads.UpdateOwned(ctx, id, requesterID, fields)
	if err != nil {
		return nil, storageError("Failed to update ad", err)
	}
	if !ok {
		return nil, apperrors.Forbidden(apperrors.ErrCodeNotAdOwner, "You are not allowed to update this ad")
	}
	return s.reload(ctx, id)
}

// Reindex ghi lại toàn bộ ads vào chỉ mục tìm kiếm
func (s *AdService) Reindex(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, apperrors.BadRequest(apperrors.ErrCodeValidation, "Search index is not configured", nil)
	}
	ads, err := s.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.index.Reindex(ctx, ads); err != nil {
		return 0, apperrors.Internal("Failed to reindex ads", err)
	}
	return len(ads), nil
}
