package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_comments_user_ad;not null"`
	AdID      uint      `json:"adId" gorm:"uniqueIndex:idx_comments_user_ad;index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
