package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/service"
	"github.com/dom/staybook/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

// PhotosField is the multipart field that carries uploaded photos.
const PhotosField = "photos"

type UploadHandler struct {
	uploadService *service.UploadService
	store         storage.BlobStore
	maxBytes      int64
}

func NewUploadHandler(uploadService *service.UploadService, store storage.BlobStore, maxBytes int64) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, store: store, maxBytes: maxBytes}
}

type UploadByLinkRequest struct {
	Link string `json:"link" validate:"required"`
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %d bytes", h.maxBytes))
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[PhotosField]
	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll(files)
			writeServiceError(w, r, "upload.Upload", fmt.Errorf("%w: open %q: %v", domain.ErrStorage, fh.Filename, err))
			return
		}
		files = append(files, service.UploadFile{OriginalName: fh.Filename, Content: f})
	}
	defer closeAll(files)

	names, err := h.uploadService.StoreBatch(r.Context(), files)
	if err != nil {
		writeServiceError(w, r, "upload.Upload", err)
		return
	}

	writeJSON(w, http.StatusOK, names)
}

func closeAll(files []service.UploadFile) {
	for _, f := range files {
		if c, ok := f.Content.(multipart.File); ok {
			c.Close()
		}
	}
}

func (h *UploadHandler) UploadByLink(w http.ResponseWriter, r *http.Request) {
	var req UploadByLinkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	name, err := h.uploadService.StoreFromURL(r.Context(), req.Link)
	if err != nil {
		writeServiceError(w, r, "upload.UploadByLink", err)
		return
	}

	writeJSON(w, http.StatusOK, name)
}

// Serve streams a stored photo by its filename reference.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	rc, info, err := h.store.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) || errors.Is(err, storage.ErrInvalidName) {
			http.NotFound(w, r)
			return
		}
		hlog.FromRequest(r).Error().Err(err).Str("name", name).Msg("failed to open upload")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", info.ContentType)
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, rc); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("name", name).Msg("upload stream interrupted")
	}
}
