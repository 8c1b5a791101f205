package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectKeyKeepsExtension(t *testing.T) {
	key := NewObjectKey("School Photo.PNG")
	assert.True(t, strings.HasSuffix(key, ".png"), "key %q should end with .png", key)
}

func TestNewObjectKeyDefaultsExtension(t *testing.T) {
	key := NewObjectKey("upload")
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}

func TestNewObjectKeyUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		key := NewObjectKey("a.jpg")
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %q", key)
		seen[key] = struct{}{}
	}
}

func TestKeyFromURLInvertsPublicURL(t *testing.T) {
	supa, err := NewSupabaseStorage(SupabaseConfig{
		ProjectURL: "https://example.supabase.co",
		ServiceKey: "k",
		Bucket:     "school-images",
	})
	require.NoError(t, err)
	local, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/media")
	require.NoError(t, err)

	key, ok := KeyFromURL(supa, supa.PublicURL("123_abcd.jpg"))
	require.True(t, ok)
	assert.Equal(t, "123_abcd.jpg", key)

	key, ok = KeyFromURL(local, local.PublicURL("123_abcd.jpg"))
	require.True(t, ok)
	assert.Equal(t, "123_abcd.jpg", key)
}

func TestKeyFromURLRejectsForeignURL(t *testing.T) {
	local, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/media")
	require.NoError(t, err)

	_, ok := KeyFromURL(local, "https://elsewhere.example/photo.jpg")
	assert.False(t, ok)
	_, ok = KeyFromURL(local, local.PublicURL(""))
	assert.False(t, ok, "the bare prefix names no object")
	_, ok = KeyFromURL(nil, "http://localhost:8080/media/a.jpg")
	assert.False(t, ok)
}

func TestSupabaseUploadSendsServiceKey(t *testing.T) {
	var gotAuth, gotUpsert, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUpsert = r.Header.Get("x-upsert")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store, err := NewSupabaseStorage(SupabaseConfig{
		ProjectURL: server.URL,
		ServiceKey: "service-key",
		Bucket:     "school-images",
	})
	require.NoError(t, err)

	err = store.Upload(context.Background(), "123_abcd.jpg", "image/jpeg", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "false", gotUpsert)
	assert.Equal(t, "/storage/v1/object/school-images/123_abcd.jpg", gotPath)
}

func TestSupabaseUploadSurfacesStoreMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInsufficientStorage)
		_, _ = w.Write([]byte("storage quota exceeded"))
	}))
	defer server.Close()

	store, err := NewSupabaseStorage(SupabaseConfig{
		ProjectURL: server.URL,
		ServiceKey: "service-key",
		Bucket:     "school-images",
	})
	require.NoError(t, err)

	err = store.Upload(context.Background(), "x.jpg", "image/jpeg", strings.NewReader("payload"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage quota exceeded")
}

func TestSupabasePublicURL(t *testing.T) {
	store, err := NewSupabaseStorage(SupabaseConfig{
		ProjectURL: "https://example.supabase.co",
		ServiceKey: "k",
		Bucket:     "school-images",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"https://example.supabase.co/storage/v1/object/public/school-images/123_abcd.jpg",
		store.PublicURL("123_abcd.jpg"))
}

func TestLocalStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080/media")
	require.NoError(t, err)

	require.NoError(t, store.Upload(context.Background(), "a.jpg", "image/jpeg", strings.NewReader("data")))
	assert.Equal(t, "http://localhost:8080/media/a.jpg", store.PublicURL("a.jpg"))

	// second write to the same key must fail, never overwrite
	err = store.Upload(context.Background(), "a.jpg", "image/jpeg", strings.NewReader("other"))
	require.Error(t, err)

	require.NoError(t, store.Remove(context.Background(), "a.jpg"))
	require.NoError(t, store.Remove(context.Background(), "a.jpg"))
}
