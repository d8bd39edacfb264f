package dto

import (
	"time"

	"autobazaar/models"
)

// UserResponse định nghĩa response cho user, không bao giờ chứa mật khẩu
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsBanned  bool      `json:"isBanned"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	FullName  *string   `json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsBanned:  u.IsBanned,
		Phone:     u.Phone,
		Address:   u.Address,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// LoginRequest định nghĩa request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest chứa ID token do Google cấp
type GoogleLoginRequest struct {
	TokenID string `json:"tokenId" binding:"required"`
}

// RegisterRequest định nghĩa request đăng ký
type RegisterRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     *string `json:"password"`
	IsFromGoogle bool    `json:"isFromGoogle"`
	TokenID      string  `json:"tokenId"`
}

// UpdateUserRequest: chỉ các trường khác nil mới được cập nhật
type UpdateUserRequest struct {
	Name        *string `json:"name"`
	FullName    *string `json:"fullName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Password    *string `json:"password"`
	OldPassword *string `json:"oldPassword"`
}

type UserInfoResponse struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type GoogleFlagResponse struct {
	Google bool `json:"google"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type BannedStatusRequest struct {
	IsBanned *bool `json:"isBanned" binding:"required"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}
