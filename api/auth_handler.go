package api

import (
	"encoding/json"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/techconnect/site-backend/auth"
	"github.com/techconnect/site-backend/database"
	"github.com/techconnect/site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	tokens    auth.TokenIssuer
}

func newAuthHandler(userRepo *database.UserRepo, tokens auth.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		tokens:    tokens,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// login verifies the dashboard password and issues a session token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email and password are required"))
			return
		}

		user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("find", "user", err))
			return
		}
		if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
			// Same response either way; do not reveal which half failed.
			h.responder.WriteError(w, errs.NewUnauthenticatedError("invalid credentials"))
			return
		}

		actor := auth.Actor{ID: user.ID, Email: user.Email, Name: user.Name}
		token, err := h.tokens.Issue(actor)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue session token")
			h.responder.WriteError(w, errs.NewInternalError("could not start session"))
			return
		}

		h.responder.WriteJSON(w, loginResponse{
			Token: token,
			Name:  user.Name,
			Email: user.Email,
		})
	}
}

type profileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func (req profileRequest) validate() error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.EmailFormat),
		validation.Field(&req.Password, validation.Length(8, 0)),
	)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range fieldErrs {
			return errs.NewBadRequestErrorWithField("invalid profile", field, fieldErr.Error())
		}
	}
	return errs.NewBadRequestError(err.Error())
}

// updateProfile updates the authenticated actor's own account. The password
// is only re-hashed when a new one is supplied.
func (h authHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFromContext(r.Context())
		if actor == nil {
			h.responder.WriteError(w, errs.NewUnauthenticatedError("sign in to edit your profile"))
			return
		}

		var req profileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(r.Context(), actor.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		user.Name = req.Name
		user.Email = req.Email
		if req.Password != "" {
			hash, err := auth.HashPassword(req.Password)
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to hash password")
				h.responder.WriteError(w, errs.NewInternalError("could not update password"))
				return
			}
			user.PasswordHash = hash
		}
		now := time.Now()
		user.UpdatedAt = &now

		if err := h.userRepo.Update(r.Context(), user); err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}
