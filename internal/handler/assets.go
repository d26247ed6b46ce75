package handler

import (
	"net/http"
	"strings"
)

// AssetsHandler serves the images referenced by template replies
type AssetsHandler struct {
	files http.Handler
}

// NewAssetsHandler serves dir read-only. Request paths map onto dir as is,
// so /assets/rift.png is read from <dir>/assets/rift.png.
func NewAssetsHandler(dir string) *AssetsHandler {
	return &AssetsHandler{files: http.FileServer(http.Dir(dir))}
}

// RegisterRoutes registers asset routes
func (h *AssetsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /assets/", h.Serve)
}

// Serve handles GET /assets/{file}. Directory listings are not exposed.
func (h *AssetsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/") {
		http.NotFound(w, r)
		return
	}
	h.files.ServeHTTP(w, r)
}
