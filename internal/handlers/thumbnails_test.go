package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thumbnail-backend/internal/config"
	"thumbnail-backend/internal/handlers"
	"thumbnail-backend/internal/middleware"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/supabase"
	"thumbnail-backend/internal/thumbnail"
)

const jwtSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

type fakeService struct {
	generated   *models.Thumbnail
	generateErr error
	lastRequest thumbnail.Request
	lastUser    uuid.UUID

	stored map[uuid.UUID]*models.Thumbnail
	err    error
}

func newFakeService() *fakeService {
	return &fakeService{stored: make(map[uuid.UUID]*models.Thumbnail)}
}

func (f *fakeService) Generate(ctx context.Context, userID uuid.UUID, req thumbnail.Request) (*models.Thumbnail, error) {
	f.lastRequest = req
	f.lastUser = userID
	if err := thumbnail.Validate(&req); err != nil {
		return nil, err
	}
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.generated, nil
}

func (f *fakeService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Thumbnail, error) {
	if f.err != nil {
		return nil, f.err
	}
	th, ok := f.stored[id]
	if !ok || th.UserID != userID {
		return nil, supabase.ErrNotFound
	}
	return th, nil
}

func (f *fakeService) List(ctx context.Context, userID uuid.UUID) ([]models.Thumbnail, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Thumbnail, 0)
	for _, th := range f.stored {
		if th.UserID == userID {
			out = append(out, *th)
		}
	}
	return out, nil
}

func (f *fakeService) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	th, ok := f.stored[id]
	if !ok || th.UserID != userID {
		return false, nil
	}
	delete(f.stored, id)
	return true, nil
}

func newRouter(svc handlers.ThumbnailService, deleteReportsMissing bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(&config.Config{SupabaseJWTSecret: jwtSecret}))

	h := handlers.NewThumbnailsHandler(svc, deleteReportsMissing)
	api.POST("/thumbnails", h.GenerateThumbnail)
	api.GET("/thumbnails", h.ListThumbnails)
	api.GET("/thumbnails/:id", h.GetThumbnail)
	api.DELETE("/thumbnails/:id", h.DeleteThumbnail)
	api.GET("/styles", handlers.NewCatalogHandler().GetStyles)
	return router
}

func bearer(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + s
}

func do(t *testing.T, router *gin.Engine, method, path string, userID uuid.UUID, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != uuid.Nil {
		req.Header.Set("Authorization", bearer(t, userID))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func storedThumbnail(owner uuid.UUID) *models.Thumbnail {
	now := time.Now().UTC()
	return &models.Thumbnail{
		ID:          uuid.New(),
		UserID:      owner,
		Title:       "Hello",
		Style:       thumbnail.StyleMinimalist,
		AspectRatio: "16:9",
		ImageURL:    sql.NullString{String: "https://cdn.example.com/a.png", Valid: true},
		Status:      thumbnail.StatusSucceeded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestGenerateThumbnail_Success(t *testing.T) {
	owner := uuid.New()
	svc := newFakeService()
	svc.generated = storedThumbnail(owner)
	router := newRouter(svc, false)

	w := do(t, router, "POST", "/api/v1/thumbnails", owner, models.GenerateThumbnailRequest{
		Title:       "Hello",
		Prompt:      "a gopher",
		Style:       "Minimalist",
		AspectRatio: "16:9",
		ColorScheme: "ocean",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.GenerateThumbnailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Thumbnail generated successfully", resp.Message)
	assert.Equal(t, "https://cdn.example.com/a.png", resp.Thumbnail.ImageURL)
	assert.False(t, resp.Thumbnail.IsGenerating)

	assert.Equal(t, owner, svc.lastUser)
	assert.Equal(t, "a gopher", svc.lastRequest.UserPrompt)
	assert.Equal(t, thumbnail.ColorOcean, svc.lastRequest.ColorScheme)
}

func TestGenerateThumbnail_ValidationIs400(t *testing.T) {
	owner := uuid.New()
	router := newRouter(newFakeService(), false)

	cases := map[string]struct {
		body    models.GenerateThumbnailRequest
		message string
	}{
		"empty title": {
			body:    models.GenerateThumbnailRequest{Style: "Minimalist"},
			message: "Invalid or too long title",
		},
		"unsafe prompt": {
			body:    models.GenerateThumbnailRequest{Title: "x", Style: "Minimalist", Prompt: "NUDE beach"},
			message: "Unsafe content detected. Please modify your prompt.",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(t, router, "POST", "/api/v1/thumbnails", owner, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}

func TestGenerateThumbnail_DownstreamFailureIs500(t *testing.T) {
	svc := newFakeService()
	svc.generateErr = errors.New("inference request failed: status 503: Model is currently loading")
	router := newRouter(svc, false)

	w := do(t, router, "POST", "/api/v1/thumbnails", uuid.New(), models.GenerateThumbnailRequest{
		Title: "Hello",
		Style: "Minimalist",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Model is currently loading")
}

func TestThumbnailRoutes_RequireSession(t *testing.T) {
	router := newRouter(newFakeService(), false)

	for _, r := range []struct{ method, path string }{
		{"POST", "/api/v1/thumbnails"},
		{"GET", "/api/v1/thumbnails"},
		{"DELETE", "/api/v1/thumbnails/" + uuid.NewString()},
		{"GET", "/api/v1/styles"},
	} {
		w := do(t, router, r.method, r.path, uuid.Nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, r.path)
		assert.Contains(t, w.Body.String(), "You are not logged in.")
	}
}

func TestDeleteThumbnail_IdempotentAndOwnerScoped(t *testing.T) {
	owner, stranger := uuid.New(), uuid.New()
	svc := newFakeService()
	th := storedThumbnail(owner)
	svc.stored[th.ID] = th
	router := newRouter(svc, false)
	path := "/api/v1/thumbnails/" + th.ID.String()

	w := do(t, router, "DELETE", path, stranger, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, svc.stored, th.ID)

	w = do(t, router, "DELETE", path, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thumbnail deleted successfully")
	assert.NotContains(t, svc.stored, th.ID)

	w = do(t, router, "DELETE", path, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteThumbnail_ReportsMissingWhenConfigured(t *testing.T) {
	owner := uuid.New()
	svc := newFakeService()
	th := storedThumbnail(owner)
	svc.stored[th.ID] = th
	router := newRouter(svc, true)
	path := "/api/v1/thumbnails/" + th.ID.String()

	w := do(t, router, "DELETE", path, uuid.New(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, svc.stored, th.ID)

	w = do(t, router, "DELETE", path, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, "DELETE", path, owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteThumbnail_InvalidID(t *testing.T) {
	router := newRouter(newFakeService(), false)

	w := do(t, router, "DELETE", "/api/v1/thumbnails/not-a-uuid", uuid.New(), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetThumbnail(t *testing.T) {
	owner := uuid.New()
	svc := newFakeService()
	th := storedThumbnail(owner)
	svc.stored[th.ID] = th
	router := newRouter(svc, false)
	path := "/api/v1/thumbnails/" + th.ID.String()

	w := do(t, router, "GET", path, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ThumbnailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, th.ID.String(), resp.ID)
	assert.Equal(t, "succeeded", resp.Status)

	w = do(t, router, "GET", path, uuid.New(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListThumbnails(t *testing.T) {
	owner := uuid.New()
	svc := newFakeService()
	for i := 0; i < 3; i++ {
		th := storedThumbnail(owner)
		svc.stored[th.ID] = th
	}
	other := storedThumbnail(uuid.New())
	svc.stored[other.ID] = other
	router := newRouter(svc, false)

	w := do(t, router, "GET", "/api/v1/thumbnails", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ThumbnailListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Thumbnails, 3)

	svc.err = errors.New("connection reset")
	w = do(t, router, "GET", "/api/v1/thumbnails", owner, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetStyles(t *testing.T) {
	router := newRouter(newFakeService(), false)

	w := do(t, router, "GET", "/api/v1/styles", uuid.New(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Styles, 5)
	assert.Len(t, resp.ColorSchemes, 8)
	assert.Equal(t, "Bold & Graphic", resp.Styles[0].Name)
}
