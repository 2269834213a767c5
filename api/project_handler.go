package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/techconnect/site-backend/catalog"
	"github.com/techconnect/site-backend/database"
	"github.com/techconnect/site-backend/errs"
	"github.com/techconnect/site-backend/models"
)

// Image uploads above this size are rejected at the form parser.
const maxUploadBytes = 10 << 20

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	catalog     *catalog.Service
	projectRepo *database.ProjectRepo
}

func newProjectHandler(catalogService *catalog.Service, projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		catalog:     catalogService,
		projectRepo: projectRepo,
	}
}

// ProjectCollection is the public listing response.
type ProjectCollection struct {
	Projects   []models.Project `json:"projects"`
	Total      int              `json:"total"`
	Categories []string         `json:"categories"`
	Loading    bool             `json:"loading"`
}

// listProjects returns the catalog, optionally narrowed by ?category= and ?q=.
// @Summary List projects
// @Description Returns the project catalog filtered by category and search term
// @Tags Projects
// @Produce json
// @Param category query string false "Category filter, 'Todos' for all"
// @Param q query string false "Free-text search over title, description and technologies"
// @Success 200 {object} ProjectCollection "Visible projects"
// @Failure 502 {object} map[string]any "Bad Gateway - catalog fetch failed"
// @Router /projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.catalog.EnsureLoaded(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category := r.URL.Query().Get("category")
		if category == "" {
			category = catalog.CategoryAll
		}
		term := r.URL.Query().Get("q")

		visible := catalog.Filter(h.catalog.Projects(), category, term)

		h.responder.WriteJSON(w, ProjectCollection{
			Projects:   visible,
			Total:      len(visible),
			Categories: catalog.Categories,
			Loading:    h.catalog.Loading(),
		})
	}
}

// createProject creates a new project from a multipart form, with an optional
// image file under the "image" field.
// @Summary Create project
// @Description Creates a new project, uploading the image when one is attached
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} map[string]any "Bad Request - invalid form data"
// @Failure 401 {object} map[string]any "Unauthorized"
// @Failure 502 {object} map[string]any "Bad Gateway - image upload failed"
// @Router /admin/project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := h.saveInputFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.catalog.Save(r.Context(), actorFromContext(r.Context()), input, nil)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject updates an existing project from a multipart form.
// @Summary Update project
// @Description Updates an existing project; a new image replaces the current one
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} map[string]any "Bad Request - invalid projectID or form data"
// @Failure 404 {object} map[string]any "Not Found - project not found"
// @Router /admin/project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := h.projectIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		input, err := h.saveInputFromForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.catalog.Save(r.Context(), actorFromContext(r.Context()), input, existing)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project and, best-effort, its stored image.
// @Summary Delete project
// @Description Deletes a project record, then its image blob when one exists
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} map[string]any "Bad Request - invalid projectID"
// @Failure 404 {object} map[string]any "Not Found - project not found"
// @Router /admin/project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := h.projectIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceFailedError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		err = h.catalog.Delete(r.Context(), actorFromContext(r.Context()), existing.ID, existing.Title, existing.ImageURL)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// refreshProjects forces a catalog refresh; the manual retry path after a
// failed fetch.
func (h projectHandler) refreshProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.catalog.Refresh(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "catalog refreshed",
		})
	}
}

func (h projectHandler) projectIDParam(r *http.Request) (uuid.UUID, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}

func (h projectHandler) saveInputFromForm(r *http.Request) (catalog.SaveInput, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse multipart form")
		return catalog.SaveInput{}, errs.NewBadRequestError("malformed multipart form")
	}

	input := catalog.SaveInput{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Technologies: r.FormValue("technologies"),
		GithubURL:    r.FormValue("github_url"),
		LiveURL:      r.FormValue("live_url"),
		ImageURL:     r.FormValue("image_url"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == http.ErrMissingFile:
		// no new image; the existing image_url (if any) is kept
	case err != nil:
		h.logger.Error().Err(err).Msg("Failed to read image form file")
		return catalog.SaveInput{}, errs.NewBadRequestError("malformed image upload")
	default:
		input.Image = &catalog.ImageFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	return input, nil
}
