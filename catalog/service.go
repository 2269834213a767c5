package catalog

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/techconnect/site-backend/auth"
	"github.com/techconnect/site-backend/errs"
	"github.com/techconnect/site-backend/models"
	"github.com/techconnect/site-backend/storage"
)

// ProjectStore is the record-store boundary the catalog needs.
type ProjectStore interface {
	FindAllOrdered(ctx context.Context) ([]models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service owns the in-memory catalog snapshot and orchestrates every read,
// write and delete against the record store and the object store. The
// snapshot is only ever replaced wholesale after a refresh; Save and Delete
// never mutate it directly.
type Service struct {
	repo     ProjectStore
	blobs    storage.ObjectStore
	notifier Notifier
	logger   zerolog.Logger

	now   func() time.Time
	newID func() uuid.UUID

	mu       sync.RWMutex
	snapshot []models.Project
	loaded   bool
	loading  atomic.Bool
}

func NewService(repo ProjectStore, blobs storage.ObjectStore, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		blobs:    blobs,
		notifier: notifier,
		logger:   log.With().Str("component", "catalog").Logger(),
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Projects returns a copy of the current snapshot, newest first.
func (s *Service) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Project, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Loading reports whether a refresh is in flight.
func (s *Service) Loading() bool {
	return s.loading.Load()
}

// Refresh fetches the full collection ordered by creation time descending,
// normalizes technologies on every record, attaches the derived category and
// publishes the result as the new snapshot. On failure the previous snapshot
// stays in place and the error is notified; no automatic retry.
func (s *Service) Refresh(ctx context.Context) error {
	s.loading.Store(true)
	defer s.loading.Store(false)

	projects, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog refresh failed")
		s.notifier.Notify(Notification{
			Title:       "Erro ao Carregar Projetos",
			Description: err.Error(),
			Severity:    SeverityDestructive,
		})
		return errs.NewFetchFailedError(err)
	}

	for i := range projects {
		projects[i].Technologies = models.TechnologyList(NormalizeTechnologies(projects[i].Technologies))
		projects[i].Category = Classify(projects[i].Technologies)
	}

	s.mu.Lock()
	s.snapshot = projects
	s.loaded = true
	s.mu.Unlock()

	return nil
}

// EnsureLoaded refreshes once if no snapshot has been published yet.
func (s *Service) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

// ImageFile is a new image supplied with a save.
type ImageFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// SaveInput carries the project form fields. Technologies arrives as the raw
// comma-separated string the form holds; ImageURL is the existing image kept
// when no new file is uploaded.
type SaveInput struct {
	Title        string
	Description  string
	Technologies string
	GithubURL    string
	LiveURL      string
	ImageURL     string
	Image        *ImageFile
}

func (in SaveInput) validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.GithubURL, is.URL),
		validation.Field(&in.LiveURL, is.URL),
	)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range fieldErrs {
			return errs.NewBadRequestErrorWithField("invalid project", field, fieldErr.Error())
		}
	}
	return errs.NewBadRequestError(err.Error())
}

// Save validates and persists a create-or-update. Steps run strictly in
// order: actor check, validation, image upload (aborting the whole save on
// failure), image URL resolution, technology normalization, then the record
// write. The snapshot is only updated by the refresh that follows a
// successful write.
func (s *Service) Save(ctx context.Context, actor *auth.Actor, input SaveInput, existing *models.Project) (*models.Project, error) {
	if actor == nil {
		s.notifier.Notify(Notification{
			Title:       "Erro",
			Description: "Você precisa estar logado.",
			Severity:    SeverityDestructive,
		})
		return nil, errs.NewUnauthenticatedError("sign in to manage projects")
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	finalImageURL := input.ImageURL
	if input.Image != nil {
		key := storage.UploadKey(input.Image.Name, s.now())
		uploadedURL, err := s.blobs.Upload(ctx, key, input.Image.ContentType, input.Image.Body)
		if err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("image upload failed")
			s.notifier.Notify(Notification{
				Title:       "Erro no Upload da Imagem",
				Description: err.Error(),
				Severity:    SeverityDestructive,
			})
			return nil, errs.NewImageUploadFailedError(err)
		}
		finalImageURL = uploadedURL
	}

	project := models.Project{
		Title:        input.Title,
		Description:  input.Description,
		Technologies: models.TechnologyList(NormalizeTechnologies(input.Technologies)),
		GithubURL:    nilIfBlank(input.GithubURL),
		LiveURL:      nilIfBlank(input.LiveURL),
		ImageURL:     nilIfBlank(finalImageURL),
	}

	var persistErr error
	if existing != nil {
		// TODO: a replaced image leaves the old blob behind; only whole-project
		// deletion cleans blobs up today. Needs an orphan sweep or a delete here
		// once product confirms old images should not be retained.
		now := s.now()
		project.ID = existing.ID
		project.CreatedAt = existing.CreatedAt
		project.UpdatedAt = &now
		persistErr = s.repo.Update(ctx, &project)
	} else {
		project.ID = s.newID()
		project.CreatedAt = s.now()
		persistErr = s.repo.Add(ctx, &project)
	}

	if persistErr != nil {
		s.logger.Error().Err(persistErr).Str("title", project.Title).Msg("project save failed")
		s.notifier.Notify(Notification{
			Title:       "Erro ao Salvar Projeto",
			Description: persistErr.Error(),
			Severity:    SeverityDestructive,
		})
		operation := "create"
		if existing != nil {
			operation = "update"
		}
		return nil, errs.NewPersistenceFailedError(operation, "project", persistErr)
	}

	title := "Projeto Adicionado!"
	if existing != nil {
		title = "Projeto Atualizado!"
	}
	s.notifier.Notify(Notification{
		Title:       title,
		Description: fmt.Sprintf("O projeto %q foi salvo com sucesso.", project.Title),
		Severity:    SeverityDefault,
	})

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("refresh after save failed")
	}
	return &project, nil
}

// Delete removes the record first; only after that succeeds is the image
// blob removed, best-effort. A missing blob is expected and logged at debug;
// any other storage failure is logged and swallowed, since the record is
// already gone and that is the user-relevant outcome.
func (s *Service) Delete(ctx context.Context, actor *auth.Actor, id uuid.UUID, title string, imageURL *string) error {
	if actor == nil {
		s.notifier.Notify(Notification{
			Title:       "Erro",
			Description: "Você precisa estar logado.",
			Severity:    SeverityDestructive,
		})
		return errs.NewUnauthenticatedError("sign in to manage projects")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("projectID", id.String()).Msg("project delete failed")
		s.notifier.Notify(Notification{
			Title:       "Erro ao Excluir Projeto",
			Description: err.Error(),
			Severity:    SeverityDestructive,
		})
		return errs.NewPersistenceFailedError("delete", "project", err)
	}

	if imageURL != nil && *imageURL != "" {
		s.removeBlob(ctx, *imageURL)
	}

	s.notifier.Notify(Notification{
		Title:       "Projeto Excluído!",
		Description: fmt.Sprintf("O projeto %q foi removido.", title),
		Severity:    SeverityDefault,
	})

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("refresh after delete failed")
	}
	return nil
}

func (s *Service) removeBlob(ctx context.Context, imageURL string) {
	key, err := storage.BlobKeyFromURL(imageURL)
	if err != nil {
		s.logger.Warn().Err(err).Str("imageURL", imageURL).Msg("could not derive blob key")
		return
	}

	if err := s.blobs.Remove(ctx, key); err != nil {
		if errs.IsBlobNotFound(err) {
			s.logger.Debug().Str("key", key).Msg("blob already gone")
			return
		}
		s.logger.Warn().Err(err).Str("key", key).Msg("blob delete failed")
	}
}

func nilIfBlank(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
