package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  *string   `json:"-"` // nil khi đăng ký qua Google
	Role      Role      `gorm:"type:varchar(16);default:user" json:"role"`
	IsBanned  bool      `gorm:"default:false" json:"isBanned"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	FullName  *string   `json:"fullName"`
}

// RegisteredByGoogle đúng khi tài khoản không có mật khẩu
func (u User) RegisteredByGoogle() bool {
	return u.Password == nil
}
