package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/service"
)

func newTestHandler(clientDir string) *Handler {
	return &Handler{
		services: &service.Services{},
		graphql: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"data":{}}`))
		}),
		clientDir: clientDir,
		logger:    logger.Nop(),
	}
}

func TestRoutes_GraphQLEndpoint(t *testing.T) {
	router := newTestHandler("").Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/graphql", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"data":{}}`, rr.Body.String())
}

func TestRoutes_Health(t *testing.T) {
	router := newTestHandler("").Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestHandler("").Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_NoClientDirNoCatchAll(t *testing.T) {
	router := newTestHandler("").Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/profile/alice", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- SPA catch-all ----

func writeClientBundle(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bundle.js"), []byte("console.log(1)"), 0o600))

	return dir
}

func TestSPA_ServesExistingAsset(t *testing.T) {
	router := newTestHandler(writeClientBundle(t)).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bundle.js", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "console.log(1)", rr.Body.String())
}

func TestSPA_FallsBackToIndex(t *testing.T) {
	router := newTestHandler(writeClientBundle(t)).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/profile/alice", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<html>app</html>", rr.Body.String())
}

func TestSPA_PathTraversalStaysInClientDir(t *testing.T) {
	dir := writeClientBundle(t)
	router := newTestHandler(dir).Init()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/../secret"
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "escaping paths fall back to index.html")
	assert.Equal(t, "<html>app</html>", rr.Body.String())
}
