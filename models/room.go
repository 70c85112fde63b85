package models

import (
	"time"
)

type Room struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Code        string    `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}
