package dto

import (
	"autobazaar/constants"
	"autobazaar/models"
)

// CreateAdRequest định nghĩa request tạo quảng cáo
type CreateAdRequest struct {
	TechnicalInfo  string   `json:"technicalInfo" binding:"required"`
	Address        string   `json:"address" binding:"required"`
	MobileNum      string   `json:"mobileNum" binding:"required"`
	City           string   `json:"city" binding:"required"`
	CarName        string   `json:"carName" binding:"required"`
	PicsURL        string   `json:"picsUrl" binding:"required,url"`
	AdditionalInfo string   `json:"additionalInfo"`
	Price          *float64 `json:"price" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	Year           int      `json:"year" binding:"required"`
	Status         *int     `json:"status"`
	Model          string   `json:"model" binding:"required"`
	VideoURL       string   `json:"videoUrl" binding:"omitempty,url"`
	Brand          string   `json:"brand" binding:"required"`
	Color          string   `json:"color" binding:"required"`
	Distance       *int     `json:"distance"`
	Accidental     *bool    `json:"accidental"`
	UserID         uint     `json:"userId" binding:"required"`
}

func (r CreateAdRequest) ToModel() models.Ad {
	ad := models.Ad{
		UserID:         r.UserID,
		TechnicalInfo:  r.TechnicalInfo,
		Address:        r.Address,
		MobileNum:      r.MobileNum,
		City:           r.City,
		CarName:        r.CarName,
		PicsURL:        r.PicsURL,
		AdditionalInfo: r.AdditionalInfo,
		Model:          r.Model,
		VideoURL:       r.VideoURL,
		Brand:          r.Brand,
		Color:          r.Color,
		Year:           r.Year,
		Date:           r.Date,
		Status:         constants.AdStatusActive,
	}
	if r.Price != nil {
		ad.Price = *r.Price
	}
	if r.Status != nil {
		ad.Status = *r.Status
	}
	if r.Distance != nil {
		ad.Distance = *r.Distance
	}
	if r.Accidental != nil {
		ad.Accidental = *r.Accidental
	}
	return ad
}

// UpdateAdRequest: UserID là người gửi request, dùng để kiểm tra quyền sở hữu
type UpdateAdRequest struct {
	UserID         uint     `json:"userId" binding:"required"`
	TechnicalInfo  *string  `json:"technicalInfo"`
	Address        *string  `json:"address"`
	MobileNum      *string  `json:"mobileNum"`
	City           *string  `json:"city"`
	CarName        *string  `json:"carName"`
	PicsURL        *string  `json:"picsUrl" binding:"omitempty,url"`
	AdditionalInfo *string  `json:"additionalInfo"`
	Price          *float64 `json:"price"`
	Date           *string  `json:"date"`
	Year           *int     `json:"year"`
	Status         *int     `json:"status"`
	Model          *string  `json:"model"`
	VideoURL       *string  `json:"videoUrl" binding:"omitempty,url"`
	Brand          *string  `json:"brand"`
	Color          *string  `json:"color"`
	Distance       *int     `json:"distance"`
	Accidental     *bool    `json:"accidental"`
}

// Fields trả về map cột -> giá trị cho các trường được gửi lên
func (r UpdateAdRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setString := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setString("technical_info", r.TechnicalInfo)
	setString("address", r.Address)
	setString("mobile_num", r.MobileNum)
	setString("city", r.City)
	setString("car_name", r.CarName)
	setString("pics_url", r.PicsURL)
	setString("additional_info", r.AdditionalInfo)
	setString("date", r.Date)
	setString("model", r.Model)
	setString("video_url", r.VideoURL)
	setString("brand", r.Brand)
	setString("color", r.Color)
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Year != nil {
		fields["year"] = *r.Year
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Distance != nil {
		fields["distance"] = *r.Distance
	}
	if r.Accidental != nil {
		fields["accidental"] = *r.Accidental
	}
	return fields
}

type ChangeStatusRequest struct {
	Status *int `json:"status" binding:"required"`
}

// SearchAdQuery được decode từ query string bằng gorilla/schema
type SearchAdQuery struct {
	Q      string `schema:"q"`
	Brand  string `schema:"brand"`
	City   string `schema:"city"`
	Status *int   `schema:"status"`
}

type AdCreatedResponse struct {
	ID uint `json:"id"`
}

type AdWithAverageRate struct {
	models.Ad
	AverageRate float64 `json:"averageRate"`
}
