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
	"github.com/techconnect/site-backend/models"
)

type settingsHandler struct {
	responder    Responder
	logger       zerolog.Logger
	settingsRepo *database.SiteSettingsRepo
}

func newSettingsHandler(settingsRepo *database.SiteSettingsRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		settingsRepo: settingsRepo,
	}
}

// getSettings returns the company settings; an empty object before first save.
func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingsRepo.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("find", "site settings", err))
			return
		}

		if settings == nil {
			settings = &models.SiteSettings{}
		}
		h.responder.WriteJSON(w, settings)
	}
}

type settingsRequest struct {
	CompanyName  string `json:"company_name"`
	CompanyEmail string `json:"company_email"`
	CompanyPhone string `json:"company_phone"`
}

func (req settingsRequest) validate() error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.CompanyEmail, is.EmailFormat),
	)
	if err == nil {
		return nil
	}
	return errs.NewBadRequestErrorWithField("invalid settings", "company_email", err.Error())
}

// updateSettings upserts the single settings row.
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req settingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode settings request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		settings := models.SiteSettings{
			CompanyName:  req.CompanyName,
			CompanyEmail: req.CompanyEmail,
			CompanyPhone: req.CompanyPhone,
		}
		if err := h.settingsRepo.Upsert(r.Context(), &settings); err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("save", "site settings", err))
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}
