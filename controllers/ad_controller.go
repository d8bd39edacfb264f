package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"autobazaar/dto"
	apperrors "autobazaar/errors"
	"autobazaar/response"
	"autobazaar/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
)

const createAdFailedMessage = "Failed to create ad"

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type AdController struct {
	Ads *services.AdService
}

func NewAdController(ads *services.AdService) AdController {
	return AdController{Ads: ads}
}

// GetAdDetail godoc
// @Summary      Lấy ad theo id
// @Tags         ads
// @Produce      json
// @Param        id   path      int  true  "Ad ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /ads/{id} [get]
func (a AdController) GetAdDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ad, err := a.Ads.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, ad)
}

func (a AdController) GetAllAds(c *gin.Context) {
	ads, err := a.Ads.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithTotal(c, ads, len(ads))
}

func (a AdController) GetAdsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	ads, err := a.Ads.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithTotal(c, ads, len(ads))
}

// SearchAds godoc
// @Summary      Tìm kiếm ads
// @Tags         ads
// @Produce      json
// @Param        q       query     string  false  "từ khóa"
// @Param        brand   query     string  false  "hãng xe"
// @Param        city    query     string  false  "thành phố"
// @Param        status  query     int     false  "trạng thái"
// @Success      200     {object}  response.ResponseTotal
// @Router       /ads/search [get]
func (a AdController) SearchAds(c *gin.Context) {
	var q dto.SearchAdQuery
	if err := queryDecoder.Decode(&q, c.Request.URL.Query()); err != nil {
		response.BadRequest(c, "Invalid search query")
		return
	}
	ads, err := a.Ads.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithTotal(c, ads, len(ads))
}

// CreateAd godoc
// @Summary      Tạo ad mới
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateAdRequest  true  "ad"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  response.Response
// @Router       /ads [post]
func (a AdController) CreateAd(c *gin.Context) {
	var req dto.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": createAdFailedMessage})
		return
	}

	ad, err := a.Ads.Create(c.Request.Context(), req)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": createAdFailedMessage})
		return
	}
	response.Created(c, "Ad created successfully", dto.AdCreatedResponse{ID: ad.ID})
}

func (a AdController) UpdateAd(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Failed to update ad")
		return
	}

	ad, err := a.Ads.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, ad)
}

func (a AdController) DeleteAd(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.Ads.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

func (a AdController) ChangeAdStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Failed to change ad status")
		return
	}

	ad, err := a.Ads.ChangeStatus(c.Request.Context(), id, *req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, ad)
}

// UploadPictures nhận multipart field "files" và form field "userId"
func (a AdController) UploadPictures(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	requesterID, err := strconv.ParseUint(c.PostForm("userId"), 10, 64)
	if err != nil || requesterID == 0 {
		response.BadRequest(c, "userId is required")
		return
	}
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		response.BadRequest(c, "No files uploaded")
		return
	}

	readers, closeAll, err := openFiles(form.File["files"])
	defer closeAll()
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return
	}

	ad, err := a.Ads.AddPictures(c.Request.Context(), id, uint(requesterID), readers)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, ad)
}

func openFiles(headers []*multipart.FileHeader) ([]io.Reader, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	readers := make([]io.Reader, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		readers = append(readers, f)
	}
	return readers, closeAll, nil
}
