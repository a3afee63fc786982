package upload

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

type Handler struct {
	svc    *Service
	maxMB  int64
	maxN   int
	logger *zap.Logger
	dev    bool
}

func NewHandler(svc *Service, maxSizeMB int64, maxPerBatch int, log *zap.Logger, dev bool) *Handler {
	return &Handler{
		svc:    svc,
		maxMB:  maxSizeMB,
		maxN:   maxPerBatch,
		logger: log,
		dev:    dev,
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.Upstream {
		h.logger.Error("upload request failed", zap.Error(err))
	}
	apperr.HTTPError(w, err, h.dev)
}

func (h *Handler) maxBytes() int64 {
	return h.maxMB << 20
}

// Single handles POST /upload/image with one "image" form file.
func (h *Handler) Single(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes()+1024)
	if err := r.ParseMultipartForm(h.maxBytes()); err != nil {
		h.fail(w, apperr.New(apperr.Validation,
			fmt.Sprintf("Image must be smaller than %dMB", h.maxMB)))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.fail(w, apperr.New(apperr.Validation, "No image file provided"))
		return
	}
	defer file.Close()

	url, err := h.svc.SaveUploaded(r.Context(), file, header)
	if err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessData(w, http.StatusCreated, "Image uploaded successfully", map[string]string{
		"url": url,
	})
}

// Multiple handles POST /upload/images with up to the batch limit of
// "images" form files.
func (h *Handler) Multiple(w http.ResponseWriter, r *http.Request) {
	batchLimit := h.maxBytes() * int64(h.maxN)
	r.Body = http.MaxBytesReader(w, r.Body, batchLimit+1024)
	if err := r.ParseMultipartForm(batchLimit); err != nil {
		h.fail(w, apperr.New(apperr.Validation,
			fmt.Sprintf("Each image must be smaller than %dMB", h.maxMB)))
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		h.fail(w, apperr.New(apperr.Validation, "No image files provided"))
		return
	}
	if len(files) > h.maxN {
		h.fail(w, apperr.New(apperr.Validation,
			fmt.Sprintf("Maximum %d images per upload", h.maxN)))
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		if header.Size > h.maxBytes() {
			h.fail(w, apperr.New(apperr.Validation,
				fmt.Sprintf("Each image must be smaller than %dMB", h.maxMB)))
			return
		}
		file, err := header.Open()
		if err != nil {
			h.fail(w, apperr.Wrap(apperr.Upstream, "opening uploaded file", err))
			return
		}
		url, err := h.svc.SaveUploaded(r.Context(), file, header)
		file.Close()
		if err != nil {
			h.fail(w, err)
			return
		}
		urls = append(urls, url)
	}

	httpres.SuccessData(w, http.StatusCreated,
		fmt.Sprintf("%d images uploaded successfully", len(urls)),
		map[string]interface{}{"urls": urls})
}

// Delete handles DELETE /upload/image/{fileName}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["fileName"]); err != nil {
		h.fail(w, err)
		return
	}
	httpres.SuccessMessage(w, http.StatusOK, "Image deleted successfully")
}
