package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/service"
	"github.com/sunrise-school/cms-api/internal/upload"
	"github.com/sunrise-school/cms-api/pkg/config"
)

type fakeStore struct {
	mu      sync.Mutex
	uploads int
	failMsg string
}

func (s *fakeStore) Upload(_ context.Context, _, _ string, r io.Reader) error {
	s.mu.Lock()
	s.uploads++
	s.mu.Unlock()
	io.Copy(io.Discard, r)
	if s.failMsg != "" {
		return errStore(s.failMsg)
	}
	return nil
}

func (s *fakeStore) PublicURL(key string) string { return "https://cdn.test/public/" + key }

func (s *fakeStore) Remove(context.Context, string) error { return nil }

type errStore string

func (e errStore) Error() string { return string(e) }

func uploadTestRouter(store *fakeStore, cfg config.UploadsConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pipeline := upload.NewPipeline(store, zap.NewNop(), 2*time.Millisecond)
	svc := service.NewMediaService(pipeline, store, nil, zap.NewNop())
	h := NewUploadHandler(svc, cfg)

	r := gin.New()
	r.POST("/admin/uploads", h.Upload)
	return r
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for name, data := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandlerBatchSuccess(t *testing.T) {
	store := &fakeStore{}
	r := uploadTestRouter(store, config.UploadsConfig{MaxBatchSize: 10})

	body, contentType := multipartBody(t, nil, map[string][]byte{
		"a.png": smallPNG(t),
		"b.png": smallPNG(t),
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var resp dto.UploadBatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, 2, store.uploads)
	for _, result := range resp.Results {
		assert.Equal(t, 100, result.Progress)
		assert.NotEmpty(t, result.URL)
	}
}

func TestUploadHandlerStoreFailure(t *testing.T) {
	store := &fakeStore{failMsg: "storage quota exceeded"}
	r := uploadTestRouter(store, config.UploadsConfig{})

	body, contentType := multipartBody(t, nil, map[string][]byte{"a.png": smallPNG(t)})
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var resp dto.UploadBatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, upload.StatusError, resp.Results[0].Status)
	assert.Equal(t, 0, resp.Results[0].Progress)
	assert.Equal(t, "storage quota exceeded", resp.Results[0].Error)
	assert.Empty(t, resp.Results[0].URL)
}

func TestUploadHandlerWithCrop(t *testing.T) {
	store := &fakeStore{}
	r := uploadTestRouter(store, config.UploadsConfig{})

	body, contentType := multipartBody(t, map[string]string{
		"crop_x": "1", "crop_y": "1", "crop_width": "4", "crop_height": "4",
	}, map[string][]byte{"a.png": smallPNG(t)})
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.uploads)
}

func TestUploadHandlerRejectsOversizedBatch(t *testing.T) {
	r := uploadTestRouter(&fakeStore{}, config.UploadsConfig{MaxBatchSize: 1})

	body, contentType := multipartBody(t, nil, map[string][]byte{
		"a.png": smallPNG(t),
		"b.png": smallPNG(t),
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandlerRejectsUnsupportedType(t *testing.T) {
	r := uploadTestRouter(&fakeStore{}, config.UploadsConfig{AllowedMIMEs: []string{"image/jpeg"}})

	body, contentType := multipartBody(t, nil, map[string][]byte{"a.png": smallPNG(t)})
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandlerNoFiles(t *testing.T) {
	r := uploadTestRouter(&fakeStore{}, config.UploadsConfig{})

	body, contentType := multipartBody(t, map[string]string{"crop_x": "0"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
