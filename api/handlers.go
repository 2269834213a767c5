package api

import (
	"github.com/techconnect/site-backend/auth"
	"github.com/techconnect/site-backend/catalog"
	"github.com/techconnect/site-backend/database"
	"github.com/techconnect/site-backend/services"
)

type routeHandlers struct {
	projectHandler     projectHandler
	settingsHandler    settingsHandler
	socialLinksHandler socialLinksHandler
	contactHandler     contactHandler
	authHandler        authHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, catalogService *catalog.Service, sender services.EmailSender, tokens auth.TokenIssuer) *routeHandlers {
	return &routeHandlers{
		projectHandler:     newProjectHandler(catalogService, db.ProjectRepo()),
		settingsHandler:    newSettingsHandler(db.SiteSettingsRepo()),
		socialLinksHandler: newSocialLinksHandler(db.SocialLinksRepo()),
		contactHandler:     newContactHandler(db.SiteSettingsRepo(), sender),
		authHandler:        newAuthHandler(db.UserRepo(), tokens),
	}
}
