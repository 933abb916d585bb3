package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"notekeeper/internal/app/client/config"
)

// recordedRequest - запрос, принятый тестовым backend
type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	UserID      string
	Body        map[string]interface{}
}

type cannedResponse struct {
	status int
	body   string
}

// fakeBackend повторяет контракт пяти конечных точек заметок
type fakeBackend struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]cannedResponse
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()

	fb := &fakeBackend{
		responses: map[string]cannedResponse{
			pathGetUsername: {http.StatusOK, `{"username": "alice", "user_id": 1}`},
			pathGetNotes:    {http.StatusOK, `[{"id": "a", "content": "hi", "timestamp": "2024-03-05T14:07:09Z"}]`},
			pathSaveNote:    {http.StatusOK, `{"status": "success", "message": "Note saved successfully!"}`},
			pathUpdateNote:  {http.StatusOK, `{"status": "success", "message": "Note updated successfully!"}`},
			pathDeleteNote:  {http.StatusOK, `{"status": "success", "message": "Note deleted successfully!"}`},
		},
	}

	r := chi.NewRouter()
	r.Get(pathGetUsername, fb.handle(pathGetUsername))
	r.Get(pathGetNotes+"{userID}", fb.handle(pathGetNotes))
	r.Post(pathSaveNote, fb.handle(pathSaveNote))
	r.Put(pathUpdateNote, fb.handle(pathUpdateNote))
	r.Delete(pathDeleteNote, fb.handle(pathDeleteNote))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return fb, srv
}

func (fb *fakeBackend) respond(route string, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.responses[route] = cannedResponse{status: status, body: body}
}

func (fb *fakeBackend) handle(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			UserID:      chi.URLParam(r, "userID"),
		}

		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}

		fb.mu.Lock()
		fb.requests = append(fb.requests, rec)
		resp := fb.responses[route]
		fb.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}
}

// calls возвращает принятые запросы с указанным путем (префиксом для get_notes)
func (fb *fakeBackend) calls(path string) []recordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	var out []recordedRequest
	for _, req := range fb.requests {
		if req.Path == path || (path == pathGetNotes && strings.HasPrefix(req.Path, pathGetNotes)) {
			out = append(out, req)
		}
	}
	return out
}

func testConfig(serverURL string) *config.Config {
	return &config.Config{
		Env:            config.EnvLocal,
		ServerURL:      serverURL,
		RequestTimeout: 5 * time.Second,
		IDScheme:       "uuid",
		NoColor:        true,
	}
}
