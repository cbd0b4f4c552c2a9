package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"link-refresh-go/pkg/refresher"
	"link-refresh-go/pkg/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubFetcher struct {
	calls int
}

func (f *stubFetcher) Fetch(_ context.Context, _ string) (int, error) {
	f.calls++
	return http.StatusOK, nil
}

func newTestRouter(t *testing.T, content string, fetcher refresher.LinkFetcher) *gin.Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "links.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	svc := services.NewRefreshService(path, refresher.NewRunner(fetcher))
	return NewRouter(svc)
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	r := newTestRouter(t, "", &stubFetcher{})

	w := serve(r, http.MethodGet, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<button") || !strings.Contains(body, "/run-script") {
		t.Fatalf("index page missing button or script: %s", body)
	}
}

func TestNotFound(t *testing.T) {
	r := newTestRouter(t, "", &stubFetcher{})

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/anything-else"},
		{http.MethodGet, "/run-script/"},
		{http.MethodPost, "/"},
		{http.MethodPost, "/run-script"},
		{http.MethodDelete, "/nope/deeper"},
	}
	for _, tc := range cases {
		w := serve(r, tc.method, tc.path)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: status = %d, want 404", tc.method, tc.path, w.Code)
		}
		if w.Body.String() != "404 Not Found" {
			t.Errorf("%s %s: body = %q", tc.method, tc.path, w.Body.String())
		}
	}
}

func TestRunScript_NoLinks(t *testing.T) {
	f := &stubFetcher{}
	r := newTestRouter(t, "not-a-link\n\n", f)

	w := serve(r, http.MethodGet, "/run-script")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q", ct)
	}
	if w.Body.String() != "No valid links found in links.txt. Script did not run." {
		t.Fatalf("body = %q", w.Body.String())
	}
	if f.calls != 0 {
		t.Fatalf("expected no fetches, got %d", f.calls)
	}
}

func TestRunScript_MissingFile(t *testing.T) {
	r := newTestRouter(t, "", &stubFetcher{})

	w := serve(r, http.MethodGet, "/run-script")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "No valid links found") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestRunScript_RunsPass(t *testing.T) {
	f := &stubFetcher{}
	r := newTestRouter(t, "https://streamtape.com/v/abc\n", f)

	w := serve(r, http.MethodGet, "/run-script")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	want := "Starting to refresh 1 videos...\n" +
		"---------------------------------------\n" +
		"[200] ✅ https://streamtape.com/v/abc\n" +
		"---------------------------------------\n" +
		"🎉 All links refreshed. Success: 1, Failed: 0\n"
	if w.Body.String() != want {
		t.Fatalf("body = %q", w.Body.String())
	}
	if w.Header().Get("X-Run-ID") == "" {
		t.Fatal("missing X-Run-ID header")
	}
	if f.calls != 1 {
		t.Fatalf("fetches = %d, want 1", f.calls)
	}
}

// cancellingFetcher cancels the request context after the first fetch and
// fails, like the real fetcher, on any link fetched with a done context.
type cancellingFetcher struct {
	cancel context.CancelFunc
	calls  int
}

func (f *cancellingFetcher) Fetch(ctx context.Context, _ string) (int, error) {
	f.calls++
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if f.calls == 1 {
		f.cancel()
	}
	return http.StatusOK, nil
}

func TestRunScript_ClientDisconnectDoesNotStopRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := &cancellingFetcher{cancel: cancel}
	r := newTestRouter(t, "https://streamtape.com/v/1\nhttps://streamtape.com/v/2\nhttps://streamtape.com/v/3\n", f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/run-script", nil).WithContext(ctx)

	start := time.Now()
	r.ServeHTTP(w, req)
	elapsed := time.Since(start)

	if f.calls != 3 {
		t.Fatalf("fetches = %d, want 3", f.calls)
	}
	if elapsed < 3*refresher.PacingDelay {
		t.Fatalf("run took %v, expected pacing of at least %v", elapsed, 3*refresher.PacingDelay)
	}
	body := w.Body.String()
	if strings.Contains(body, "[ERROR]") || strings.Contains(body, "context canceled") {
		t.Fatalf("run was cancelled by the client: %q", body)
	}
	if !strings.HasSuffix(body, "Success: 3, Failed: 0\n") {
		t.Fatalf("unexpected footer: %q", body)
	}
}
