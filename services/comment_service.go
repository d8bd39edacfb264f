package services

import (
	"context"
	"errors"

	"autobazaar/dto"
	apperrors "autobazaar/errors"
	"autobazaar/models"
	"autobazaar/repositories"
	"autobazaar/services/logger"
)

var errCommentNotFound = apperrors.NotFound(apperrors.ErrCodeCommentNotFound, "Comment not found")

type CommentService struct {
	comments repositories.CommentRepository
	users    repositories.UserRepository
	ads      repositories.AdRepository
	logger   logger.Logger
}

type CommentServiceOptions struct {
	Comments repositories.CommentRepository
	Users    repositories.UserRepository
	Ads      repositories.AdRepository
	Logger   logger.Logger
}

func NewCommentService(opts CommentServiceOptions) *CommentService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &CommentService{
		comments: opts.Comments,
		users:    opts.Users,
		ads:      opts.Ads,
		logger:   opts.Logger,
	}
}

func (s *CommentService) Create(ctx context.Context, userID, adID uint, text string) (*models.Comment, error) {
	if text == "" {
		return nil, apperrors.BadRequest(apperrors.ErrCodeRequiredField, "Comment must not be empty", nil)
	}
	if err := ensureUserAndAd(ctx, s.users, s.ads, userID, adID); err != nil {
		return nil, err
	}

	if _, err := s.comments.FindByUserAndAd(ctx, userID, adID); err == nil {
		return nil, apperrors.Conflict(apperrors.ErrCodeCommentExists, "You have already commented on this ad", nil)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, storageError("Failed to load comment", err)
	}

	comment := &models.Comment{Comment: text, UserID: userID, AdID: adID}
	if err := s.comments.Create(ctx, comment); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, apperrors.Conflict(apperrors.ErrCodeCommentExists, "You have already commented on this ad", err)
		}
		return nil, storageError("Failed to create comment", err)
	}
	return comment, nil
}

// GetComment trả về found=false khi user chưa bình luận ad
func (s *CommentService) GetComment(ctx context.Context, adID, userID uint) (string, bool, error) {
	comment, err := s.comments.FindByUserAndAd(ctx, userID, adID)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageError("Failed to load comment", err)
	}
	return comment.Comment, true, nil
}

// GetAllCommentsForAd trả về bình luận kèm tên người viết, tên được lấy bằng một truy vấn IN
func (s *CommentService) GetAllCommentsForAd(ctx context.Context, adID uint) ([]dto.CommentWithUser, error) {
	comments, err := s.comments.FindByAdID(ctx, adID)
	if err != nil {
		return nil, storageError("Failed to load comments", err)
	}
	if len(comments) == 0 {
		return nil, apperrors.NotFound(apperrors.ErrCodeCommentNotFound, "No comments found for this ad")
	}

	ids := make([]uint, 0, len(comments))
	seen := map[uint]struct{}{}
	for _, c := range comments {
		if _, ok := seen[c.UserID]; !ok {
			seen[c.UserID] = struct{}{}
			ids = append(ids, c.UserID)
		}
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, storageError("Failed to load users", err)
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	out := make([]dto.CommentWithUser, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.CommentWithUser{Comment: c, UserName: names[c.UserID]})
	}
	return out, nil
}

func (s *CommentService) FindOne(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errCommentNotFound
	}
	if err != nil {
		return nil, storageError("Failed to load comment", err)
	}
	return comment, nil
}

func (s *CommentService) Remove(ctx context.Context, id uint) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errCommentNotFound
		}
		return storageError("Failed to delete comment", err)
	}
	return nil
}
