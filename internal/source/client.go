// Package source fetches artifact payloads from the external APIs configured
// as api links on a workspace.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrExternalFetchFailed covers transport failures and non-2xx responses.
	ErrExternalFetchFailed = errors.New("external fetch failed")
	// ErrInvalidPayload is returned when the source answers with something other than JSON.
	ErrInvalidPayload = errors.New("invalid payload")
)

type Fetcher interface {
	Fetch(ctx context.Context, baseURL, technicalName string) (json.RawMessage, error)
}

type Client struct {
	http *resty.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// BuildURL appends the artifact query parameter to baseURL.
func BuildURL(baseURL, technicalName string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "artifact=" + url.QueryEscape(technicalName)
}

func (c *Client) Fetch(ctx context.Context, baseURL, technicalName string) (json.RawMessage, error) {
	target := BuildURL(baseURL, technicalName)

	resp, err := c.http.R().SetContext(ctx).Get(target)
	if err != nil {
		slog.WarnContext(ctx, "artifact source unreachable", "url", target, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExternalFetchFailed, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		slog.WarnContext(ctx, "artifact source returned error status",
			"url", target,
			"status", resp.StatusCode(),
		)
		return nil, fmt.Errorf("%w: status %d", ErrExternalFetchFailed, resp.StatusCode())
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || !json.Valid(body) {
		return nil, ErrInvalidPayload
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return nil, ErrInvalidPayload
	}
	return json.RawMessage(compact.Bytes()), nil
}
