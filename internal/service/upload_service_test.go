package service

import (
	"io"
	"strings"
	"testing"

	"github.com/prepmint/examcore/config"
	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadService(t *testing.T) (UploadService, *storage.FSStore) {
	t.Helper()
	store, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Storage.BaseURL = "http://cdn.example.com/"
	return NewUploadService(store, cfg), store
}

func TestUploadImageStoresAndReturnsURL(t *testing.T) {
	svc, store := newUploadService(t)

	url, err := svc.UploadImage("diagram.PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://cdn.example.com/question-images/"), "got %s", url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "http://cdn.example.com/")
	rc, err := store.Get(key)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestUploadImageUniqueKeys(t *testing.T) {
	svc, _ := newUploadService(t)

	first, err := svc.UploadImage("a.png", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := svc.UploadImage("a.png", strings.NewReader("two"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestUploadImageRejectsUnsupportedExtension(t *testing.T) {
	svc, _ := newUploadService(t)

	_, err := svc.UploadImage("malware.exe", strings.NewReader("nope"))
	require.ErrorIs(t, err, model.ErrValidation)
}
