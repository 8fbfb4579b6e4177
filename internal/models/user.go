package models

import (
	"time"
)

// User roles recognized by the authorization middleware.
const (
	RoleUser    = "User"
	RoleOfficer = "officer"
	RoleAdmin   = "admin"
)

// User maps to the users table and carries the authentication identity.
type User struct {
	ID                     int64      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name                   string     `json:"name" gorm:"column:name;not null;size:255"`
	Email                  string     `json:"email" gorm:"column:email;unique;not null;size:255"`
	PasswordHash           string     `json:"-" gorm:"column:password_hash;not null;size:255"`
	Role                   string     `json:"role" gorm:"column:role;not null;default:'User';size:50"`
	AccountVerified        bool       `json:"accountVerified" gorm:"column:account_verified;not null;default:false"`
	VerificationCode       *int64     `json:"-" gorm:"column:verification_code"`
	VerificationCodeExpire *time.Time `json:"-" gorm:"column:verification_code_expire"`
	ResetPasswordToken     *string    `json:"-" gorm:"column:reset_password_token;size:255"`
	ResetPasswordExpire    *time.Time `json:"-" gorm:"column:reset_password_expire"`
	CreatedAt              time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt              time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the database table for User.
func (User) TableName() string {
	return "users"
}
