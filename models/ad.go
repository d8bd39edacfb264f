package models

import (
	"time"

	"github.com/lib/pq"
)

type Ad struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	UserID         uint           `gorm:"index;not null" json:"userId"`
	TechnicalInfo  string         `json:"technicalInfo"`
	Address        string         `json:"address"`
	MobileNum      string         `json:"mobileNum"`
	City           string         `json:"city"`
	CarName        string         `json:"carName"`
	PicsURL        string         `gorm:"column:pics_url" json:"picsUrl"`
	AdditionalInfo string         `json:"additionalInfo"`
	Model          string         `json:"model"`
	VideoURL       string         `gorm:"column:video_url" json:"videoUrl"`
	Brand          string         `json:"brand"`
	Color          string         `json:"color"`
	Price          float64        `json:"price"`
	Year           int            `json:"year"`
	Distance       int            `gorm:"default:0" json:"distance"`
	Accidental     bool           `gorm:"default:false" json:"accidental"`
	Status         int            `gorm:"not null" json:"status"`
	Date           string         `gorm:"index" json:"date"`
	Gallery        pq.StringArray `gorm:"type:text[]" json:"gallery"`
}
