package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// spa serves the prebuilt client bundle. An existing file under the client
// directory is served as-is; any other path falls back to index.html so the
// client-side router can resolve it. The requested path is cleaned relative
// to the root before joining, so it cannot escape the client directory.
func (h *Handler) spa(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.clientDir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.clientDir, "index.html"))
}
