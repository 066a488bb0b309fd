package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPresigner struct {
	url     string
	err     error
	lastKey string
}

func (m *mockPresigner) PresignPut(ctx context.Context, key string) (string, error) {
	m.lastKey = key
	return m.url, m.err
}

func postUpload(handler http.Handler, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/gallery/uploads", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUploadHandlerUnconfigured(t *testing.T) {
	handler := &UploadHandler{Presigner: nil}

	rec := postUpload(handler, map[string]string{"filename": "terrace.jpg"})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestUploadHandlerMissingFilename(t *testing.T) {
	handler := &UploadHandler{Presigner: &mockPresigner{url: "https://signed.example"}}

	rec := postUpload(handler, map[string]string{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandlerPresigns(t *testing.T) {
	presigner := &mockPresigner{url: "https://bucket.example/signed-put"}
	handler := &UploadHandler{
		Presigner: presigner,
		PublicURL: func(key string) string { return "https://cdn.example/" + key },
	}

	rec := postUpload(handler, map[string]string{"filename": "Terrace Night.JPG"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "https://bucket.example/signed-put", resp["upload_url"])
	assert.Equal(t, presigner.lastKey, resp["object_key"])
	assert.True(t, strings.HasPrefix(resp["object_key"], "gallery/"), "key: %s", resp["object_key"])
	assert.True(t, strings.HasSuffix(resp["object_key"], ".jpg"), "extension should be kept lowercased: %s", resp["object_key"])
	assert.Equal(t, "https://cdn.example/"+resp["object_key"], resp["public_url"])
}

func TestUploadHandlerPresignError(t *testing.T) {
	handler := &UploadHandler{Presigner: &mockPresigner{err: errors.New("s3 down")}}

	rec := postUpload(handler, map[string]string{"filename": "terrace.jpg"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestObjectKeyUniquePerCall(t *testing.T) {
	k1 := objectKey("a.png")
	k2 := objectKey("a.png")
	assert.NotEqual(t, k1, k2)
}
