package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/techconnect/site-backend/auth"
	"github.com/techconnect/site-backend/catalog"
	"github.com/techconnect/site-backend/models"
)

type stubRepo struct {
	projects []models.Project
}

func (r *stubRepo) FindAllOrdered(ctx context.Context) ([]models.Project, error) {
	out := make([]models.Project, len(r.projects))
	copy(out, r.projects)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubRepo) Add(ctx context.Context, project *models.Project) error {
	r.projects = append(r.projects, *project)
	return nil
}

func (r *stubRepo) Update(ctx context.Context, project *models.Project) error { return nil }
func (r *stubRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type stubBlobs struct{}

func (stubBlobs) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	return "https://cdn.test/project-images/" + key, nil
}
func (stubBlobs) Remove(ctx context.Context, key string) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Notify(catalog.Notification) {}

func newTestProjectHandler(repo *stubRepo) projectHandler {
	svc := catalog.NewService(repo, stubBlobs{}, nopNotifier{})
	return newProjectHandler(svc, nil)
}

func TestListProjectsFilters(t *testing.T) {
	repo := &stubRepo{projects: []models.Project{
		{
			ID:           uuid.New(),
			Title:        "Portal",
			Technologies: models.TechnologyList{"React"},
			CreatedAt:    time.Now(),
		},
		{
			ID:           uuid.New(),
			Title:        "App Fitness",
			Technologies: models.TechnologyList{"React Native"},
			CreatedAt:    time.Now().Add(-time.Hour),
		},
	}}
	handler := newTestProjectHandler(repo)

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{
			name:       "no filters",
			query:      "",
			wantTitles: []string{"Portal", "App Fitness"},
		},
		{
			name:       "category",
			query:      "?category=Web",
			wantTitles: []string{"Portal"},
		},
		{
			name:       "search term",
			query:      "?q=fitness",
			wantTitles: []string{"App Fitness"},
		},
		{
			name:       "category and term with no overlap",
			query:      "?category=Web&q=fitness",
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/projects"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.listProjects().ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var body ProjectCollection
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response: %v", err)
			}

			titles := make([]string, 0, len(body.Projects))
			for _, p := range body.Projects {
				titles = append(titles, p.Title)
			}
			if len(titles) != len(tt.wantTitles) {
				t.Fatalf("titles = %v, want %v", titles, tt.wantTitles)
			}
			for i := range titles {
				if titles[i] != tt.wantTitles[i] {
					t.Errorf("titles = %v, want %v", titles, tt.wantTitles)
					break
				}
			}
			if body.Total != len(tt.wantTitles) {
				t.Errorf("total = %d, want %d", body.Total, len(tt.wantTitles))
			}
		})
	}
}

func TestCreateProjectRequiresActor(t *testing.T) {
	handler := newTestProjectHandler(&stubRepo{})

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("title", "Novo Projeto"); err != nil {
		t.Fatal(err)
	}
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/project", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.createProject().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestCreateProjectWithActor(t *testing.T) {
	repo := &stubRepo{}
	handler := newTestProjectHandler(repo)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("title", "Novo Projeto")
	form.WriteField("technologies", "React, Node.js")
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/project", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	actor := auth.Actor{ID: uuid.New(), Email: "[email protected]"}
	req = req.WithContext(ctxWithActor(req.Context(), actor))
	rec := httptest.NewRecorder()

	handler.createProject().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if len(repo.projects) != 1 {
		t.Fatalf("stored projects = %d, want 1", len(repo.projects))
	}
	if got := repo.projects[0].Technologies; len(got) != 2 || got[0] != "React" || got[1] != "Node.js" {
		t.Errorf("stored technologies = %v, want [React Node.js]", got)
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	mw := newAuthMiddleware(tokens)

	var gotActor *auth.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotActor = actorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/project", nil)
		rec := httptest.NewRecorder()
		mw.authenticate(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		actor := auth.Actor{ID: uuid.New(), Email: "[email protected]", Name: "Admin"}
		token, err := tokens.Issue(actor)
		if err != nil {
			t.Fatal(err)
		}

		req := httptest.NewRequest(http.MethodGet, "/admin/project", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mw.authenticate(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotActor == nil || gotActor.ID != actor.ID {
			t.Errorf("actor in context = %+v, want %+v", gotActor, actor)
		}
	})
}
