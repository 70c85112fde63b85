package models

import (
	"time"
)

const (
	AssetStatusAvailable = "AVAILABLE"
	AssetStatusInUse     = "IN_USE"
	AssetStatusRepair    = "REPAIR"
	AssetStatusRetired   = "RETIRED"
)

type Asset struct {
	ID           uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Code         string     `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name         string     `gorm:"column:name;not null" json:"name"`
	Description  *string    `gorm:"column:description" json:"description,omitempty"`
	SerialNumber *string    `gorm:"column:serial_number;uniqueIndex" json:"serial_number,omitempty"`
	CategoryID   *uint      `gorm:"column:category_id" json:"category_id,omitempty"`
	RoomID       *uint      `gorm:"column:room_id" json:"room_id,omitempty"`
	OwnerID      *uint      `gorm:"column:owner_id" json:"owner_id,omitempty"`
	Status       string     `gorm:"column:status;type:varchar(32);default:'AVAILABLE'" json:"status"`
	PurchaseAt   *time.Time `gorm:"column:purchase_at" json:"purchase_at,omitempty"`
	Value        *float64   `gorm:"column:value" json:"value,omitempty"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedBy    *uint      `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Owner    *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Asset) TableName() string {
	return "assets"
}
