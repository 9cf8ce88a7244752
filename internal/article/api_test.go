package article

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mshv/microblog/internal/store"
)

type articleJSON struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"user_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}

func testRouter(s *store.Store) chi.Router {
	rs := &Resource{Store: s, Log: zap.NewNop().Sugar()}

	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Mount("/articles", rs.Routes())

	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func errBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp.Error
}

func TestCreateArticle(t *testing.T) {
	s := store.New()
	r := testRouter(s)

	alice, err := s.CreateUser("Alice", "alice@example.com")
	require.NoError(t, err)

	w := doJSON(t, r, "POST", "/articles", map[string]interface{}{
		"user_id": alice.ID,
		"title":   "T",
		"content": "C",
		"tags":    "python,flask",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got articleJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, int64(1), got.ID)
	require.Equal(t, alice.ID, got.UserID)
	require.Equal(t, []string{"python", "flask"}, got.Tags)

	// created_at is the display string, not a raw timestamp
	created, err := time.ParseInLocation("2006-01-02 15:04:05", got.CreatedAt, time.Local)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), created, 5*time.Second)
}

func TestCreateArticleMissingFields(t *testing.T) {
	s := store.New()
	r := testRouter(s)

	_, err := s.CreateUser("Alice", "alice@example.com")
	require.NoError(t, err)

	for _, payload := range []map[string]interface{}{
		{"title": "T", "content": "C"},
		{"user_id": 1, "content": "C"},
		{"user_id": 1, "title": "T"},
	} {
		w := doJSON(t, r, "POST", "/articles", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "user_id, title, and content are required", errBody(t, w))
	}
}

func TestCreateArticleUnknownUser(t *testing.T) {
	r := testRouter(store.New())

	w := doJSON(t, r, "POST", "/articles", map[string]interface{}{
		"user_id": 42,
		"title":   "T",
		"content": "C",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", errBody(t, w))
}

func TestCreateArticleNoTags(t *testing.T) {
	s := store.New()
	r := testRouter(s)

	_, err := s.CreateUser("Alice", "alice@example.com")
	require.NoError(t, err)

	w := doJSON(t, r, "POST", "/articles", map[string]interface{}{
		"user_id": 1,
		"title":   "T",
		"content": "C",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got articleJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.Tags)
	require.Empty(t, got.Tags)
}

func TestListArticlesFilters(t *testing.T) {
	s := store.New()
	r := testRouter(s)

	alice, err := s.CreateUser("Alice", "alice@example.com")
	require.NoError(t, err)

	_, err = s.CreateArticle(alice.ID, "T1", "C1", []string{"python", "flask"})
	require.NoError(t, err)
	_, err = s.CreateArticle(alice.ID, "T2", "C2", []string{"go"})
	require.NoError(t, err)

	w := doJSON(t, r, "GET", "/articles?tag=python", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []articleJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "T1", got[0].Title)

	// inclusive of the given day
	today := time.Now().Format("2006-01-02")
	w = doJSON(t, r, "GET", "/articles?date_after="+today, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)

	w = doJSON(t, r, "GET", "/articles?tag=go&date_after="+today, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "T2", got[0].Title)
}

func TestListArticlesBadDate(t *testing.T) {
	r := testRouter(store.New())

	w := doJSON(t, r, "GET", "/articles?date_after=20-06-2021", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid date_after format. Use YYYY-MM-DD", errBody(t, w))

	// the date check fires even when a tag filter is present
	w = doJSON(t, r, "GET", "/articles?tag=go&date_after=nope", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticle(t *testing.T) {
	s := store.New()
	r := testRouter(s)

	alice, err := s.CreateUser("Alice", "alice@example.com")
	require.NoError(t, err)
	_, err = s.CreateArticle(alice.ID, "T", "C", []string{"go"})
	require.NoError(t, err)

	w := doJSON(t, r, "GET", "/articles/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got articleJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "T", got.Title)
	require.NotEmpty(t, got.CreatedAt)

	w = doJSON(t, r, "GET", "/articles/2", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Article not found", errBody(t, w))
}
