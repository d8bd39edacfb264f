package dto

import "autobazaar/models"

type CreateRateRequest struct {
	UserID uint `json:"userId" binding:"required"`
	AdID   uint `json:"adId" binding:"required"`
	Score  int  `json:"score" binding:"score"`
}

// RateLookupResponse: Rated=false là kết quả bình thường, không phải lỗi
type RateLookupResponse struct {
	Rated   bool   `json:"rated"`
	Score   *int   `json:"score"`
	Message string `json:"message,omitempty"`
}

type AverageRateResponse struct {
	AdID        uint    `json:"adId"`
	AverageRate float64 `json:"averageRate"`
}

type UniqueUsersResponse struct {
	AdID        uint `json:"adId"`
	UniqueUsers int  `json:"uniqueUsers"`
}

type CreateCommentRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	AdID    uint   `json:"adId" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type CommentLookupResponse struct {
	Commented bool    `json:"commented"`
	Comment   *string `json:"comment"`
	Message   string  `json:"message,omitempty"`
}

type CommentWithUser struct {
	models.Comment
	UserName string `json:"userName"`
}
