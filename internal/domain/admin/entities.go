package admin

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const RoleAdmin Role = "ADMIN"

var (
	ErrNotFound      = errors.New("admin not found")
	ErrAlreadyExists = errors.New("admin already exists")
)

type Admin struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	AdminID string `gorm:"size:32;uniqueIndex:ux_admins_admin_id" json:"admin_id"`

	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex:ux_admins_email" json:"email"`
	Password string `gorm:"type:text" json:"-"`
	Role     Role   `gorm:"size:16;default:'ADMIN'" json:"role"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Admin) TableName() string { return "admins" }
