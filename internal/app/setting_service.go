package app

import (
	"errors"
	"strings"

	"docflow/internal/model"
	"docflow/internal/repository"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

type SettingService struct {
	settingRepo *repository.UserSettingRepository
}

type UpdateSettingInput struct {
	UserID   uint
	Language string
	Theme    string
}

func NewSettingService(settingRepo *repository.UserSettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

// Get returns the stored settings, or the defaults when the user has
// never saved any.
func (s *SettingService) Get(userID uint) (*model.UserSetting, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	setting, err := s.settingRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &model.UserSetting{UserID: userID, Language: "en", Theme: "light"}, nil
	}
	return setting, nil
}

func (s *SettingService) Update(input UpdateSettingInput) (*model.UserSetting, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	language := strings.ToLower(strings.TrimSpace(input.Language))
	if language == "" {
		language = "en"
	}
	if language != "en" && language != "fr" {
		return nil, ErrUnsupportedLanguage
	}

	theme := strings.TrimSpace(input.Theme)
	if theme == "" {
		theme = "light"
	}

	setting := &model.UserSetting{
		UserID:   input.UserID,
		Language: language,
		Theme:    theme,
	}
	if err := s.settingRepo.Upsert(setting); err != nil {
		return nil, err
	}
	return setting, nil
}
