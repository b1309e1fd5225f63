package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"docflow/internal/model"
)

type AIRequestRepository struct {
	db *gorm.DB
}

func NewAIRequestRepository(db *gorm.DB) *AIRequestRepository {
	return &AIRequestRepository{db: db}
}

func (r *AIRequestRepository) Create(req *model.AIRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		return fmt.Errorf("create ai request failed: %w", err)
	}
	return nil
}

// ListByUserSince returns every audit record for the user created at or
// after the given instant. Both quota windows are derived from this one
// result set so the two counts can never disagree.
func (r *AIRequestRepository) ListByUserSince(userID uint, since time.Time) ([]model.AIRequest, error) {
	var requests []model.AIRequest
	if err := r.db.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list ai requests failed: %w", err)
	}
	return requests, nil
}

func (r *AIRequestRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.AIRequest{}).Error; err != nil {
		return fmt.Errorf("delete ai requests by user failed: %w", err)
	}
	return nil
}
