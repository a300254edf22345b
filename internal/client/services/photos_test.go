package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kouden/internal/client/client"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func TestPhotoUpload(t *testing.T) {
	var gotBody []byte
	var gotCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "flowers.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	fc := newFakeClient()
	fc.UploadURL = srv.URL + "/bucket/o1"
	fc.UploadKey = "offerings/o1/abc"
	s := NewPhotoService(fc, srv.Client())

	key, err := s.Upload(context.Background(), "o1", path)
	require.NoError(t, err)
	assert.Equal(t, "offerings/o1/abc", key)
	assert.Equal(t, "image/png", fc.LastCT)
	assert.Equal(t, "image/png", gotCT)
	assert.Equal(t, pngHeader, gotBody)
}

func TestPhotoUpload_Errors(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	s := NewPhotoService(fc, http.DefaultClient)

	_, err := s.Upload(ctx, "o1", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	fc.UploadErr = client.ErrForbidden
	_, err = s.Upload(ctx, "o1", path)
	assert.ErrorIs(t, err, client.ErrForbidden)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	fc.UploadErr = nil
	fc.UploadURL = srv.URL
	_, err = s.Upload(ctx, "o1", path)
	assert.ErrorContains(t, err, "upload photo")
}

func TestPhotoURL(t *testing.T) {
	fc := newFakeClient()
	fc.PhotoURLRet = "https://example.test/o1"
	url, err := NewPhotoService(fc, nil).URL(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/o1", url)
}
