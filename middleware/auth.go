package middleware

import (
	"context"
	"errors"
	"strings"

	apperrors "autobazaar/errors"
	"autobazaar/models"
	"autobazaar/repositories"
	"autobazaar/response"
	"autobazaar/services"

	"github.com/gin-gonic/gin"
)

// TokenParser kiểm tra chữ ký và trả về claims của bearer token
type TokenParser interface {
	Parse(token string) (*services.Claims, error)
}

// UserLookup đọc lại user để role và banned status luôn lấy từ database
type UserLookup interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware xử lý authentication, roles rỗng nghĩa là mọi user đã đăng nhập.
// Khi users == nil thì role và banned status lấy từ claims của token.
func AuthMiddleware(tokens TokenParser, revoker services.TokenRevoker, users UserLookup, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Request.Context(), claims.Id)
			if err != nil {
				response.ServerError(c)
				c.Abort()
				return
			}
			if revoked {
				response.Error(c, apperrors.KindUnauthorized.HTTPStatus(), "Token has been revoked")
				c.Abort()
				return
			}
		}

		role, banned := claims.UserInfo.Role, claims.UserInfo.IsBanned
		if users != nil {
			user, err := users.FindByID(c.Request.Context(), claims.UserInfo.UserId)
			if errors.Is(err, repositories.ErrNotFound) {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			if err != nil {
				response.ServerError(c)
				c.Abort()
				return
			}
			role, banned = user.Role, user.IsBanned
		}

		if banned {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 && !hasRole(role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set("userID", claims.UserInfo.UserId)
		c.Set("userRole", role)
		c.Set("claims", claims)
		c.Next()
	}
}

func hasRole(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
