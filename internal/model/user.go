package model

import (
	"time"
)

type UserRole string

const (
	SuperAdmin UserRole = "super_admin"
	Admin      UserRole = "admin"
	Member     UserRole = "user"
)

// swagger:model User
type User struct {
	BaseModel
	Email      string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username   string     `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password   string     `gorm:"size:255;not null" json:"-"`
	FullName   string     `gorm:"size:255" json:"fullName"`
	Role       UserRole   `gorm:"type:enum('super_admin','admin','user');default:'user'" json:"role"`
	IsActive   bool       `gorm:"default:true" json:"isActive"`
	IsVerified bool       `gorm:"default:false" json:"isVerified"`
	AvatarURL  string     `gorm:"size:500" json:"avatarUrl"`
	Bio        string     `gorm:"size:1000" json:"bio"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsAdminOrAbove reports whether the user may manage courses, media and site content.
func (u *User) IsAdminOrAbove() bool {
	return u.Role == SuperAdmin || u.Role == Admin
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == SuperAdmin
}
