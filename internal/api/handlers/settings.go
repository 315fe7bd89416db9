package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nurshop/storefront/internal/api/middleware"
	"github.com/nurshop/storefront/internal/models"
	service "github.com/nurshop/storefront/internal/services"
	"github.com/nurshop/storefront/internal/utils"
	"github.com/nurshop/storefront/internal/utils/response"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	validator       *validator.Validate
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		validator:       utils.NewValidator(),
	}
}

// GetSettings returns the whole settings page in one projection.
func (h *SettingsHandler) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()
		account, _ := h.settingsService.Account(ctx)

		response.Success(w, http.StatusOK, map[string]any{
			"language":      h.settingsService.Language(ctx),
			"notifications": h.settingsService.Notifications(ctx),
			"privacy":       h.settingsService.Privacy(ctx),
			"account":       account,
		})
	}
}

func (h *SettingsHandler) UpdateLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateLanguageRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.settingsService.SetLanguage(r.Context(), req.Language); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]models.Language{"language": req.Language})
	}
}

func (h *SettingsHandler) UpdateNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.NotificationSettings
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.settingsService.SetNotifications(r.Context(), req); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, req)
	}
}

func (h *SettingsHandler) UpdatePrivacy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.PrivacySettings
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.settingsService.SetPrivacy(r.Context(), req); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, req)
	}
}

func (h *SettingsHandler) UpdateAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateAccountRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		account, err := h.settingsService.SetAccount(r.Context(), req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, account)
	}
}

func (h *SettingsHandler) DeleteAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.settingsService.DeleteAccount(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Account data deleted")

		response.Success(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (h *SettingsHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.settingsService.Logout(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Session data cleared")

		response.Success(w, http.StatusOK, map[string]string{"status": "logged_out"})
	}
}
