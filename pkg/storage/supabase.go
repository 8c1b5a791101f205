package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SupabaseStorage talks to a Supabase-compatible storage REST API using the
// service role key. The SDK-less REST surface is small enough that two calls
// cover everything this application needs.
type SupabaseStorage struct {
	projectURL   string
	serviceKey   string
	bucket       string
	cacheControl string
	client       *http.Client
}

// SupabaseConfig carries the connection parameters for SupabaseStorage.
type SupabaseConfig struct {
	ProjectURL   string
	ServiceKey   string
	Bucket       string
	CacheControl string
	Timeout      time.Duration
}

// NewSupabaseStorage validates the config and returns a client.
func NewSupabaseStorage(cfg SupabaseConfig) (*SupabaseStorage, error) {
	if cfg.ProjectURL == "" || cfg.ServiceKey == "" {
		return nil, fmt.Errorf("supabase storage requires project URL and service key")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("supabase storage requires a bucket name")
	}
	if cfg.CacheControl == "" {
		cfg.CacheControl = "3600"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &SupabaseStorage{
		projectURL:   strings.TrimRight(cfg.ProjectURL, "/"),
		serviceKey:   cfg.ServiceKey,
		bucket:       cfg.Bucket,
		cacheControl: cfg.CacheControl,
		client:       &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Upload stores the object under the given key. Upsert is disabled: a key
// collision is an error from the store, not a silent overwrite.
func (s *SupabaseStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.projectURL, s.bucket, url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, r)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "max-age="+s.cacheControl)
	req.Header.Set("x-upsert", "false")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload object: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upload object: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// PublicURL resolves the publicly addressable URL for a stored object.
func (s *SupabaseStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.projectURL, s.bucket, url.PathEscape(key))
}

// Remove deletes an object from the bucket.
func (s *SupabaseStorage) Remove(ctx context.Context, key string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.projectURL, s.bucket, url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("delete object: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
