package controllers

import (
	"autobazaar/constants"
	"autobazaar/dto"
	"autobazaar/response"
	"autobazaar/services"

	"github.com/gin-gonic/gin"
)

type RateController struct {
	Rates *services.RateService
}

func NewRateController(rates *services.RateService) RateController {
	return RateController{Rates: rates}
}

// CreateRate godoc
// @Summary      Đánh giá ad (1-5), mỗi user một lần
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateRateRequest  true  "rate"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /rates [post]
func (r RateController) CreateRate(c *gin.Context) {
	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid rate data")
		return
	}

	rate, err := r.Rates.Create(c.Request.Context(), req.UserID, req.AdID, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "Success", rate)
}

func (r RateController) GetAverageRate(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	avg, err := r.Rates.GetAverageRate(c.Request.Context(), adID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.AverageRateResponse{AdID: adID, AverageRate: avg})
}

func (r RateController) GetUniqueUsers(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	count, err := r.Rates.GetUniqueUserCount(c.Request.Context(), adID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.UniqueUsersResponse{AdID: adID, UniqueUsers: count})
}

// GetUserRate: chưa đánh giá vẫn trả 200 với rated=false
func (r RateController) GetUserRate(c *gin.Context) {
	adID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	score, found, err := r.Rates.GetRate(c.Request.Context(), adID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		response.Success(c, dto.RateLookupResponse{Rated: false, Message: constants.NotRatedMessage})
		return
	}
	response.Success(c, dto.RateLookupResponse{Rated: true, Score: &score})
}
