package app

import (
	"strings"

	"docflow/internal/model"
	"docflow/internal/repository"
)

type DocumentService struct {
	docRepo *repository.DocumentRepository
	genRepo *repository.GeneratedDocumentRepository
}

type CreateDocumentInput struct {
	UserID    uint
	Title     string
	Content   string
	Objective string
}

type UpdateDocumentInput struct {
	UserID     uint
	DocumentID uint
	Title      string
	Content    string
	Objective  string
}

func NewDocumentService(docRepo *repository.DocumentRepository, genRepo *repository.GeneratedDocumentRepository) *DocumentService {
	return &DocumentService{docRepo: docRepo, genRepo: genRepo}
}

func (s *DocumentService) Create(input CreateDocumentInput) (*model.Document, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Untitled document"
	}

	doc := &model.Document{
		UserID:    input.UserID,
		Title:     title,
		Content:   input.Content,
		Objective: strings.TrimSpace(input.Objective),
	}
	if err := s.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) List(userID uint) ([]model.Document, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.docRepo.ListByUserID(userID)
}

func (s *DocumentService) Get(userID, documentID uint) (*model.Document, error) {
	if userID == 0 || documentID == 0 {
		return nil, ErrInvalidInput
	}
	doc, err := s.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	if doc.UserID != userID {
		return nil, ErrNotDocumentOwner
	}
	return doc, nil
}

func (s *DocumentService) Update(input UpdateDocumentInput) (*model.Document, error) {
	doc, err := s.Get(input.UserID, input.DocumentID)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		doc.Title = title
	}
	doc.Content = input.Content
	if objective := strings.TrimSpace(input.Objective); objective != "" {
		doc.Objective = objective
	}

	if err := s.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the document and its generation history. Audit records
// stay: they are only removed by the account-deletion cascade.
func (s *DocumentService) Delete(userID, documentID uint) error {
	doc, err := s.Get(userID, documentID)
	if err != nil {
		return err
	}
	if err := s.genRepo.DeleteByDocumentIDs([]uint{doc.ID}); err != nil {
		return err
	}
	return s.docRepo.DeleteByIDAndUserID(doc.ID, userID)
}
