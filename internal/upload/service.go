package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/config"
	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
)

// Service persists product images. The local image directory is the primary
// store; when a bucket handle is configured images go to object storage and
// the returned URL is the public object URL instead of a local path.
type Service struct {
	cfg    *config.UploadConfig
	bucket *storage.BucketHandle
	logger *zap.Logger
}

func NewService(cfg *config.UploadConfig, bucket *storage.BucketHandle, log *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		bucket: bucket,
		logger: log,
	}
}

func (s *Service) EnsureDir() error {
	return errors.Wrap(os.MkdirAll(s.cfg.ImageDir, 0o755), "creating image directory")
}

var extByContentType = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

func (s *Service) fileName(ext string) string {
	return fmt.Sprintf("product_%d_%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// SaveBase64 decodes an inline image, with or without a data-URL prefix, and
// stores it under a generated name. Returns the public URL.
func (s *Service) SaveBase64(data string) (string, error) {
	contentType := ""
	if strings.HasPrefix(data, "data:") {
		parts := strings.SplitN(data, ",", 2)
		if len(parts) != 2 {
			return "", apperr.New(apperr.Validation, "Invalid image data")
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(parts[0], "data:"), ";base64")
		data = parts[1]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", apperr.Wrap(apperr.Validation, "Invalid image data", err)
	}
	if contentType == "" {
		contentType = http.DetectContentType(raw)
	}

	ext, ok := extByContentType[contentType]
	if !ok {
		return "", apperr.New(apperr.Validation, "Only image files are allowed")
	}

	name := s.fileName(ext)
	if s.bucket != nil {
		return s.saveToBucket(context.Background(), name, contentType, raw)
	}
	return s.saveToDisk(name, raw)
}

// SaveUploaded stores a multipart upload after a content-type check.
func (s *Service) SaveUploaded(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	raw, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrap(err, "reading uploaded file")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(raw)
	}
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", apperr.New(apperr.Validation, "Only image files are allowed")
	}

	name := s.fileName(ext)
	if s.bucket != nil {
		return s.saveToBucket(ctx, name, contentType, raw)
	}
	return s.saveToDisk(name, raw)
}

func (s *Service) saveToDisk(name string, raw []byte) (string, error) {
	if err := s.EnsureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.ImageDir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", errors.Wrap(err, "writing image file")
	}
	s.logger.Debug("image stored", zap.String("file", name))
	return s.cfg.BaseURL + "/" + name, nil
}

func (s *Service) saveToBucket(ctx context.Context, name, contentType string, raw []byte) (string, error) {
	obj := s.bucket.Object("images/" + name)
	writer := obj.NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(raw); err != nil {
		writer.Close()
		return "", errors.Wrap(err, "uploading image object")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "finalizing image object")
	}
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", errors.Wrap(err, "publishing image object")
	}

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return "", errors.Wrap(err, "reading image object attributes")
	}
	s.logger.Debug("image stored in bucket", zap.String("object", attrs.Name))
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", attrs.Bucket, attrs.Name), nil
}

// Delete removes a stored image by bare file name. Path separators are
// rejected so callers cannot escape the image directory.
func (s *Service) Delete(ctx context.Context, fileName string) error {
	if fileName == "" || strings.ContainsAny(fileName, "/\\") || strings.Contains(fileName, "..") {
		return apperr.New(apperr.Validation, "Invalid file name")
	}

	if s.bucket != nil {
		obj := s.bucket.Object("images/" + fileName)
		if err := obj.Delete(ctx); err != nil {
			if errors.Is(err, storage.ErrObjectNotExist) {
				return apperr.New(apperr.NotFound, "Image file not found")
			}
			return errors.Wrap(err, "deleting image object")
		}
		return nil
	}

	path := filepath.Join(s.cfg.ImageDir, fileName)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return apperr.New(apperr.NotFound, "Image file not found")
		}
		return errors.Wrap(err, "deleting image file")
	}
	return nil
}
