package service

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
	"github.com/nurshop/storefront/internal/errors"
	"github.com/nurshop/storefront/internal/models"
	repository "github.com/nurshop/storefront/internal/repositories"
)

// SettingsService owns the preference entries: language, notifications,
// privacy and account info. These are plain stored flags; nothing here sends
// notifications or enforces privacy, per the storefront's scope.
type SettingsService struct {
	repo      repository.SettingsRepository
	sanitizer *bluemonday.Policy
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *SettingsService) Language(ctx context.Context) models.Language {
	return s.repo.Language(ctx)
}

func (s *SettingsService) SetLanguage(ctx context.Context, lang models.Language) error {

	if lang != models.LanguageBangla && lang != models.LanguageEnglish {
		return errors.BadRequestError("Unsupported language: " + string(lang))
	}

	if err := s.repo.SetLanguage(ctx, lang); err != nil {
		return errors.StorageError("Failed to save language").WithError(err)
	}

	return nil
}

func (s *SettingsService) Notifications(ctx context.Context) models.NotificationSettings {
	return s.repo.Notifications(ctx)
}

func (s *SettingsService) SetNotifications(ctx context.Context, settings models.NotificationSettings) error {

	if err := s.repo.SetNotifications(ctx, settings); err != nil {
		return errors.StorageError("Failed to save notification settings").WithError(err)
	}

	return nil
}

func (s *SettingsService) Privacy(ctx context.Context) models.PrivacySettings {
	return s.repo.Privacy(ctx)
}

func (s *SettingsService) SetPrivacy(ctx context.Context, settings models.PrivacySettings) error {

	if err := s.repo.SetPrivacy(ctx, settings); err != nil {
		return errors.StorageError("Failed to save privacy settings").WithError(err)
	}

	return nil
}

func (s *SettingsService) Account(ctx context.Context) (models.AccountInfo, bool) {
	return s.repo.Account(ctx)
}

func (s *SettingsService) SetAccount(ctx context.Context, req models.UpdateAccountRequest) (*models.AccountInfo, error) {

	account := models.AccountInfo{
		Name:  s.sanitizer.Sanitize(req.Name),
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.repo.SetAccount(ctx, account); err != nil {
		return nil, errors.StorageError("Failed to save account info").WithError(err)
	}

	return &account, nil
}

// DeleteAccount wipes all user data: cart, orders, account and preferences.
func (s *SettingsService) DeleteAccount(ctx context.Context) error {

	if err := s.repo.DeleteUserData(ctx); err != nil {
		return errors.StorageError("Failed to delete account data").WithError(err)
	}

	return nil
}

// Logout clears session data but keeps language and preference settings.
func (s *SettingsService) Logout(ctx context.Context) error {

	if err := s.repo.DeleteSessionData(ctx); err != nil {
		return errors.StorageError("Failed to clear session data").WithError(err)
	}

	return nil
}
