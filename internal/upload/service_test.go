package upload

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/config"
	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
)

// Minimal valid PNG header; enough for content-type sniffing.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.UploadConfig{
		ImageDir:    dir,
		BaseURL:     "/images",
		MaxSizeMB:   5,
		MaxPerBatch: 10,
	}
	return NewService(cfg, nil, zap.NewNop()), dir
}

func TestSaveBase64WithDataURL(t *testing.T) {
	svc, dir := newTestService(t)

	data := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
	url, err := svc.SaveBase64(data)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/images/product_"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored := filepath.Join(dir, strings.TrimPrefix(url, "/images/"))
	raw, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, raw)
}

func TestSaveBase64BareSniffsType(t *testing.T) {
	svc, _ := newTestService(t)

	url, err := svc.SaveBase64(base64.StdEncoding.EncodeToString(pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestSaveBase64RejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SaveBase64("data:image/png;base64,@@not-base64@@")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestSaveBase64RejectsNonImage(t *testing.T) {
	svc, _ := newTestService(t)

	data := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))
	_, err := svc.SaveBase64(data)
	require.Error(t, err)
	assert.Equal(t, "Only image files are allowed", apperr.Message(err))
}

func TestUniqueFileNames(t *testing.T) {
	svc, _ := newTestService(t)
	data := base64.StdEncoding.EncodeToString(pngBytes)

	first, err := svc.SaveBase64(data)
	require.NoError(t, err)
	second, err := svc.SaveBase64(data)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDelete(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	url, err := svc.SaveBase64(base64.StdEncoding.EncodeToString(pngBytes))
	require.NoError(t, err)
	name := strings.TrimPrefix(url, "/images/")

	require.NoError(t, svc.Delete(ctx, name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteMissingFile(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), "product_123_dead.png")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Image file not found", apperr.Message(err))
}

func TestDeleteRejectsPathTraversal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"", "../secret", "a/b.png", `a\b.png`, "..", "x..y/.."} {
		err := svc.Delete(ctx, name)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err), "name %q", name)
	}
}
