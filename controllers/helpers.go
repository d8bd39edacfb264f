package controllers

import (
	"strconv"

	apperrors "autobazaar/errors"
	"autobazaar/response"
	"autobazaar/services"

	"github.com/gin-gonic/gin"
)

// respondError chuyển AppError thành HTTP status, lỗi không phân loại trả 500
func respondError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Kind == apperrors.KindInternal {
		response.ServerError(c)
		return
	}
	response.Error(c, appErr.Kind.HTTPStatus(), appErr.Message)
}

// parseID đọc path param dạng số nguyên dương
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// claimsFromContext lấy claims do AuthMiddleware gắn vào
func claimsFromContext(c *gin.Context) (*services.Claims, bool) {
	value, ok := c.Get("claims")
	if !ok {
		return nil, false
	}
	claims, ok := value.(*services.Claims)
	return claims, ok
}

func messageOf(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return ""
}
