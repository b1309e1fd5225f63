package model

import "time"

// AIRequest is the append-only audit record of one generation attempt.
// Response holds the model name that produced the content, or "fallback"
// when the provider call was substituted locally.
type AIRequest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	DocumentID uint      `gorm:"not null;index" json:"document_id"`
	Prompt     string    `gorm:"type:text;not null" json:"prompt"`
	Response   string    `gorm:"size:128;not null" json:"response"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
