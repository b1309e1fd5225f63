package model

import "time"

type UserSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Language  string    `gorm:"size:8;not null;default:en" json:"language"`
	Theme     string    `gorm:"size:32;not null;default:light" json:"theme"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
