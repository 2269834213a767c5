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

type socialLinksHandler struct {
	responder Responder
	logger    zerolog.Logger
	linksRepo *database.SocialLinksRepo
}

func newSocialLinksHandler(linksRepo *database.SocialLinksRepo) socialLinksHandler {
	logger := log.With().Str("handlerName", "socialLinksHandler").Logger()

	return socialLinksHandler{
		responder: NewResponder(logger),
		logger:    logger,
		linksRepo: linksRepo,
	}
}

func (h socialLinksHandler) getLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.linksRepo.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("find", "social links", err))
			return
		}

		if links == nil {
			links = &models.SocialLinks{}
		}
		h.responder.WriteJSON(w, links)
	}
}

type socialLinksRequest struct {
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
	Github    string `json:"github"`
	Whatsapp  string `json:"whatsapp"`
}

func (req socialLinksRequest) validate() error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Instagram, is.URL),
		validation.Field(&req.Linkedin, is.URL),
		validation.Field(&req.Github, is.URL),
		validation.Field(&req.Whatsapp, is.URL),
	)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range fieldErrs {
			return errs.NewBadRequestErrorWithField("invalid social links", field, fieldErr.Error())
		}
	}
	return errs.NewBadRequestError(err.Error())
}

func (h socialLinksHandler) updateLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req socialLinksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode social links request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		links := models.SocialLinks{
			Instagram: req.Instagram,
			Linkedin:  req.Linkedin,
			Github:    req.Github,
			Whatsapp:  req.Whatsapp,
		}
		if err := h.linksRepo.Upsert(r.Context(), &links); err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("save", "social links", err))
			return
		}

		h.responder.WriteJSON(w, links)
	}
}
