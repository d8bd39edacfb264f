package models

import "time"

type Rate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Score     int       `json:"score" gorm:"not null"` // 1..5
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_rates_user_ad;not null"`
	AdID      uint      `json:"adId" gorm:"uniqueIndex:idx_rates_user_ad;index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
