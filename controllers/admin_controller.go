package controllers

import (
	"autobazaar/dto"
	"autobazaar/response"
	"autobazaar/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) AdminController {
	return AdminController{Admin: admin}
}

func (a AdminController) GetUserCount(c *gin.Context) {
	total, err := a.Admin.GetUserCount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"count": total})
}

func (a AdminController) GetAdCount(c *gin.Context) {
	total, err := a.Admin.GetAdCount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"count": total})
}

// GetTodayAds trả về số ad của ngày ?date=YYYY-MM-DD, mặc định là hôm nay
func (a AdminController) GetTodayAds(c *gin.Context) {
	date := c.Query("date")
	ads, err := a.Admin.GetTodayAds(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	if date == "" {
		date = a.Admin.Today()
	}
	response.Success(c, gin.H{"date": date, "count": len(ads)})
}

func (a AdminController) GetAllUsers(c *gin.Context) {
	users, err := a.Admin.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithTotal(c, dto.NewUserResponses(users), len(users))
}

// GetAdsWithAverageRate godoc
// @Summary      Danh sách ads kèm điểm trung bình, tăng dần
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.ResponseTotal
// @Failure      400  {object}  response.Response
// @Router       /admin/ads-with-average-rate [get]
func (a AdminController) GetAdsWithAverageRate(c *gin.Context) {
	ads, err := a.Admin.GetAllAdsWithAverageRate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithTotal(c, ads, len(ads))
}

func (a AdminController) UpdateBannedStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.BannedStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "isBanned is required")
		return
	}

	user, err := a.Admin.UpdateUserBannedStatus(c.Request.Context(), id, req.IsBanned)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(*user))
}

func (a AdminController) UpdateRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "role must be one of user, admin, moderator")
		return
	}

	user, err := a.Admin.UpdateUserRole(c.Request.Context(), id, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(*user))
}
