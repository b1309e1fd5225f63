package repository

import (
	"fmt"

	"gorm.io/gorm"

	"docflow/internal/model"
)

type GeneratedDocumentRepository struct {
	db *gorm.DB
}

func NewGeneratedDocumentRepository(db *gorm.DB) *GeneratedDocumentRepository {
	return &GeneratedDocumentRepository{db: db}
}

func (r *GeneratedDocumentRepository) Create(gen *model.GeneratedDocument) error {
	if err := r.db.Create(gen).Error; err != nil {
		return fmt.Errorf("create generated document failed: %w", err)
	}
	return nil
}

func (r *GeneratedDocumentRepository) ListByDocumentID(documentID uint) ([]model.GeneratedDocument, error) {
	var gens []model.GeneratedDocument
	if err := r.db.Where("document_id = ?", documentID).Order("updated_at DESC").Find(&gens).Error; err != nil {
		return nil, fmt.Errorf("list generated documents failed: %w", err)
	}
	return gens, nil
}

func (r *GeneratedDocumentRepository) DeleteByDocumentIDs(documentIDs []uint) error {
	if len(documentIDs) == 0 {
		return nil
	}
	if err := r.db.Where("document_id IN ?", documentIDs).Delete(&model.GeneratedDocument{}).Error; err != nil {
		return fmt.Errorf("delete generated documents failed: %w", err)
	}
	return nil
}
