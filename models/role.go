package models

import (
	"database/sql/driver"
	"fmt"
)

// Role là tập đóng các vai trò của user
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// Valid trả về true nếu role thuộc tập cho phép
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleModerator:
		return true
	default:
		return false
	}
}

// ParseRole chuyển chuỗi sang Role, lỗi nếu không hợp lệ
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return r, nil
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Role) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	case nil:
		*r = RoleUser
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	return nil
}
