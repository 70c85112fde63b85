package models

import (
	"time"
)

const (
	RoleAdmin      = "ADMIN"
	RoleAssetStaff = "ASSET_STAFF"
	RoleOwner      = "OWNER"
)

type User struct {
	ID                uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Firstname         string    `gorm:"column:firstname;not null" json:"firstname"`
	Lastname          string    `gorm:"column:lastname;not null" json:"lastname"`
	Email             string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Username          *string   `gorm:"column:username;uniqueIndex" json:"username,omitempty"`
	Password          string    `gorm:"column:password" json:"-"`
	Phone             *string   `gorm:"column:phone" json:"phone,omitempty"`
	Role              string    `gorm:"column:role;type:varchar(32);default:'OWNER'" json:"role"`
	IsActive          bool      `gorm:"column:is_active;default:true" json:"is_active"`
	IsAccountVerified bool      `gorm:"column:is_account_verified;default:false" json:"is_account_verified"`
	VerifyOtp         *string   `gorm:"column:verify_otp" json:"-"`
	VerifyOtpExpireAt *int64    `gorm:"column:verify_otp_expire_at" json:"-"`
	ResetOtp          *string   `gorm:"column:reset_otp" json:"-"`
	ResetOtpExpireAt  *int64    `gorm:"column:reset_otp_expire_at" json:"-"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName is used on import history responses.
func (u User) DisplayName() string {
	return u.Firstname + " " + u.Lastname
}

// ValidRole reports whether the value belongs to the role allow-list.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAssetStaff, RoleOwner:
		return true
	}
	return false
}
