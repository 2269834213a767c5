package api

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/techconnect/site-backend/database"
	"github.com/techconnect/site-backend/errs"
	"github.com/techconnect/site-backend/services"
)

type contactHandler struct {
	responder    Responder
	logger       zerolog.Logger
	settingsRepo *database.SiteSettingsRepo
	sender       services.EmailSender
}

func newContactHandler(settingsRepo *database.SiteSettingsRepo, sender services.EmailSender) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		settingsRepo: settingsRepo,
		sender:       sender,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (req contactRequest) validate() error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required, is.EmailFormat),
		validation.Field(&req.Subject, validation.Required),
		validation.Field(&req.Message, validation.Required),
	)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range fieldErrs {
			return errs.NewBadRequestErrorWithField("invalid contact message", field, fieldErr.Error())
		}
	}
	return errs.NewBadRequestError(err.Error())
}

// sendMessage relays a contact-form submission to the company email from the
// site settings. The message itself is not persisted.
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		settings, err := h.settingsRepo.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("find", "site settings", err))
			return
		}
		if settings == nil || settings.CompanyEmail == "" {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusUnprocessableEntity,
				"destination email is not configured"))
			return
		}

		msg := services.ContactMessage{
			SenderName:  req.Name,
			SenderEmail: req.Email,
			Subject:     req.Subject,
			Message:     req.Message,
		}
		if err := h.sender.SendContactEmail(r.Context(), msg, settings.CompanyEmail); err != nil {
			h.logger.Error().Err(err).Msg("Failed to send contact email")
			h.responder.WriteError(w, errs.NewApiErr(http.StatusBadGateway, "failed to send message"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message sent",
		})
	}
}
