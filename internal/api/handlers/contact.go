package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nurshop/storefront/internal/api/middleware"
	"github.com/nurshop/storefront/internal/models"
	service "github.com/nurshop/storefront/internal/services"
	"github.com/nurshop/storefront/internal/utils"
	"github.com/nurshop/storefront/internal/utils/response"
)

type ContactHandler struct {
	contactService *service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      utils.NewValidator(),
	}
}

func (h *ContactHandler) SubmitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		msg, err := h.contactService.Submit(r.Context(), req)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Contact message received", slog.String("id", msg.ID))

		response.Success(w, http.StatusCreated, map[string]string{"id": msg.ID})
	}
}
