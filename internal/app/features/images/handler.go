// internal/app/features/images/handler.go
package images

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dalemusser/lessonshop/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves lesson images from a single flat directory.
type Handler struct {
	Dir string
	Log *zap.Logger
}

func NewHandler(dir string, logger *zap.Logger) *Handler {
	return &Handler{
		Dir: dir,
		Log: logger,
	}
}

type notFoundResponse struct {
	Error string `json:"error"`
	File  string `json:"file"`
}

// Serve handles GET /images/lessons/{file}. Names that could leave Dir are
// reported as missing.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")

	f, info, ok := h.open(file)
	if !ok {
		h.Log.Debug("lesson image not found", zap.String("file", file))
		respond.JSON(w, http.StatusNotFound, notFoundResponse{Error: "Image not found", File: file})
		return
	}
	defer f.Close()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (h *Handler) open(file string) (*os.File, os.FileInfo, bool) {
	if file == "" || file == "." || file == ".." || strings.ContainsAny(file, `/\`) {
		return nil, nil, false
	}
	f, err := os.Open(filepath.Join(h.Dir, file))
	if err != nil {
		return nil, nil, false
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, false
	}
	return f, info, true
}
