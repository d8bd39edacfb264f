package services

import (
	"fmt"
	"time"

	apperrors "autobazaar/errors"
	"autobazaar/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// UserInfo là phần hồ sơ (không có mật khẩu) được ký vào token
type UserInfo struct {
	UserId   uint        `json:"userid"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	IsBanned bool        `json:"isBanned"`
	FullName *string     `json:"fullName,omitempty"`
	Phone    *string     `json:"phone,omitempty"`
	Address  *string     `json:"address,omitempty"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// ExpiresTime trả về thời điểm hết hạn của token
func (c *Claims) ExpiresTime() time.Time {
	return time.Unix(c.ExpiresAt, 0)
}

type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue ký hồ sơ user thành JWT HS256
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserInfo: UserInfo{
			UserId:   user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			IsBanned: user.IsBanned,
			FullName: user.FullName,
			Phone:    user.Phone,
			Address:  user.Address,
		},
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse kiểm tra chữ ký và hạn dùng rồi trả về claims
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.Unauthorized(apperrors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if !token.Valid {
		return nil, apperrors.Unauthorized(apperrors.ErrCodeInvalidToken, "Invalid token", nil)
	}
	return claims, nil
}
