package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/upload"
)

type countingStore struct {
	mu      sync.Mutex
	uploads int
	failAll bool
	removed []string
}

func (s *countingStore) Upload(_ context.Context, _ string, _ string, r io.Reader) error {
	s.mu.Lock()
	s.uploads++
	s.mu.Unlock()
	io.Copy(io.Discard, r)
	if s.failAll {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (s *countingStore) PublicURL(key string) string { return "https://cdn.test/public/" + key }

func (s *countingStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	s.removed = append(s.removed, key)
	s.mu.Unlock()
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testMediaService(store *countingStore) *MediaService {
	pipeline := upload.NewPipeline(store, zap.NewNop(), 2*time.Millisecond)
	return NewMediaService(pipeline, store, nil, zap.NewNop())
}

func TestUploadBatchWithoutCrop(t *testing.T) {
	store := &countingStore{}
	svc := testMediaService(store)

	resp, err := svc.UploadBatch(context.Background(), []StagedFile{
		{Name: "one.png", ContentType: "image/png", Data: pngBytes(t, 10, 10)},
		{Name: "two.png", ContentType: "image/png", Data: pngBytes(t, 10, 10)},
	}, dto.CropParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, 2, store.uploads)
	for _, r := range resp.Results {
		assert.Equal(t, upload.StatusDone, r.Status)
		assert.Equal(t, 100, r.Progress)
		assert.NotEmpty(t, r.URL)
	}
}

func TestUploadBatchAppliesCrop(t *testing.T) {
	store := &countingStore{}
	svc := testMediaService(store)

	resp, err := svc.UploadBatch(context.Background(), []StagedFile{
		{Name: "banner.png", ContentType: "image/png", Data: pngBytes(t, 40, 30)},
	}, dto.CropParams{X: 5, Y: 5, Width: 20, Height: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, store.uploads)
}

func TestUploadBatchUndecodableFileNeverReachesStore(t *testing.T) {
	store := &countingStore{}
	svc := testMediaService(store)

	resp, err := svc.UploadBatch(context.Background(), []StagedFile{
		{Name: "broken.png", ContentType: "image/png", Data: []byte("not an image")},
		{Name: "good.png", ContentType: "image/png", Data: pngBytes(t, 10, 10)},
	}, dto.CropParams{X: 0, Y: 0, Width: 5, Height: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, 1, store.uploads, "the broken file must not be uploaded")

	assert.Equal(t, upload.StatusError, resp.Results[0].Status)
	assert.Equal(t, 0, resp.Results[0].Progress)
	assert.Empty(t, resp.Results[0].URL)
	assert.Equal(t, upload.StatusDone, resp.Results[1].Status)
}

func TestUploadBatchStoreFailure(t *testing.T) {
	store := &countingStore{failAll: true}
	svc := testMediaService(store)

	resp, err := svc.UploadBatch(context.Background(), []StagedFile{
		{Name: "one.png", ContentType: "image/png", Data: pngBytes(t, 10, 10)},
	}, dto.CropParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, upload.StatusError, resp.Results[0].Status)
	assert.Equal(t, 0, resp.Results[0].Progress)
	assert.Empty(t, resp.Results[0].URL, "a failed upload yields no URL and no record")
}

func TestUploadBatchEmpty(t *testing.T) {
	svc := testMediaService(&countingStore{})

	_, err := svc.UploadBatch(context.Background(), nil, dto.CropParams{})
	require.Error(t, err)
}

func TestRemoveByURLDeletesOwnObject(t *testing.T) {
	store := &countingStore{}
	svc := testMediaService(store)

	svc.RemoveByURL(context.Background(), store.PublicURL("1700000000_ab12cd34.jpg"))
	assert.Equal(t, []string{"1700000000_ab12cd34.jpg"}, store.removed)
}

func TestRemoveByURLIgnoresForeignURL(t *testing.T) {
	store := &countingStore{}
	svc := testMediaService(store)

	svc.RemoveByURL(context.Background(), "https://elsewhere.example/photo.jpg")
	svc.RemoveByURL(context.Background(), "")
	assert.Empty(t, store.removed)
}
