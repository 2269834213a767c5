package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo      *ProjectRepo
	siteSettingsRepo *SiteSettingsRepo
	socialLinksRepo  *SocialLinksRepo
	userRepo         *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:      NewProjectRepo(db),
		siteSettingsRepo: NewSiteSettingsRepo(db),
		socialLinksRepo:  NewSocialLinksRepo(db),
		userRepo:         NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SiteSettingsRepo() *SiteSettingsRepo {
	return d.siteSettingsRepo
}

func (d Database) SocialLinksRepo() *SocialLinksRepo {
	return d.socialLinksRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
