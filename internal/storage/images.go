// Package storage uploads and removes workspace images in a Supabase-style
// object storage bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"fluxera.app/api/common"
	"fluxera.app/api/core/config"
)

const keyPrefix = "workspaces/"

var ErrUploadFailed = errors.New("image upload failed")

type ImageStore interface {
	// Upload stores the image and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, body []byte) (string, error)
	// Delete removes the object behind a public URL produced by Upload.
	Delete(ctx context.Context, publicURL string) error
}

type Client struct {
	http    *resty.Client
	baseURL string
	bucket  string
}

func NewClient(cfg config.StorageConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(cfg.ServiceKey).
			SetHeader("apikey", cfg.ServiceKey),
		baseURL: baseURL,
		bucket:  cfg.Bucket,
	}
}

func (c *Client) Upload(ctx context.Context, filename, contentType string, body []byte) (string, error) {
	key := ObjectKey(filename, contentType)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(body).
		Post("/storage/v1/object/" + c.bucket + "/" + key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if resp.IsError() {
		slog.ErrorContext(ctx, "storage rejected upload",
			"status", resp.StatusCode(),
			"key", key,
			"body", resp.String(),
		)
		return "", fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode())
	}

	return c.PublicURL(key), nil
}

func (c *Client) Delete(ctx context.Context, publicURL string) error {
	key := c.KeyFromURL(publicURL)
	if key == "" {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string][]string{"prefixes": {key}}).
		Delete("/storage/v1/object/" + c.bucket)
	if err != nil {
		return fmt.Errorf("deleting image %s: %w", key, err)
	}
	if resp.IsError() {
		return fmt.Errorf("deleting image %s: status %d", key, resp.StatusCode())
	}

	slog.InfoContext(ctx, "workspace image deleted", "key", key)
	return nil
}

func (c *Client) PublicURL(key string) string {
	return c.baseURL + "/storage/v1/object/public/" + c.bucket + "/" + key
}

// KeyFromURL recovers the object key from a public URL. URLs from another
// host fall back to the last path segment under the workspaces prefix.
func (c *Client) KeyFromURL(publicURL string) string {
	prefix := c.PublicURL("")
	if strings.HasPrefix(publicURL, prefix) {
		return strings.TrimPrefix(publicURL, prefix)
	}
	trimmed := strings.TrimRight(strings.SplitN(publicURL, "?", 2)[0], "/")
	if trimmed == "" {
		return ""
	}
	segment := path.Base(trimmed)
	if segment == "." || segment == "/" {
		return ""
	}
	return keyPrefix + segment
}

// ObjectKey builds a unique key of the form workspaces/<slug>-<uuid><ext>.
func ObjectKey(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	stem := common.Slugify(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)), "image")
	return keyPrefix + stem + "-" + uuid.NewString() + ext
}
