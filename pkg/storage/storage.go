package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectStorage abstracts the remote content store's object bucket. Upload
// never overwrites: keys come from NewObjectKey and implementations must
// reject duplicates rather than upsert.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) error
	PublicURL(key string) string
	Remove(ctx context.Context, key string) error
}

// NewObjectKey derives a collision-resistant storage key from the original
// filename. Only the extension survives; the rest is a timestamp plus a
// random suffix, matching what the store expects for unique object paths.
func NewObjectKey(originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	if ext == "" || len(ext) > 8 {
		ext = ".jpg"
	}
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), suffix, ext)
}

// KeyFromURL inverts PublicURL, reporting false for URLs that do not point
// into the given store. Both backends build public URLs as a fixed prefix
// followed by the escaped key, so the empty-key URL is that prefix.
func KeyFromURL(store ObjectStorage, publicURL string) (string, bool) {
	if store == nil {
		return "", false
	}
	prefix := store.PublicURL("")
	if prefix == "" || !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimPrefix(publicURL, prefix))
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}
