package storage

import (
	"context"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// ImageContentType is sent for images of unknown exact type.
	ImageContentType = "image/*"
	// VideoContentType is sent for videos of unknown exact type.
	VideoContentType = "video/*"
	// FileContentType is sent for anything else.
	FileContentType = "*/*"
)

// Storage moves asset bytes through signed URLs.
type Storage interface {
	Upload(ctx context.Context, signedURL, contentType string, data []byte) error
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Uploader PUTs a body to a signed URL.
type Uploader interface {
	Put(ctx context.Context, signedURL, contentType string, data []byte) error
}

// Fetcher GETs a body from a URL.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client is the default Storage. Each operation is bounded by Timeout on top
// of the caller's context.
type Client struct {
	HTTP    *http.Client
	Timeout time.Duration

	uploader Uploader
	fetcher  Fetcher
}

// NewClient returns a Client using hc (http.DefaultClient when nil).
func NewClient(hc *http.Client, timeout time.Duration) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{HTTP: hc, Timeout: timeout}
}

// Upload PUTs data to signedURL with the given content type. An empty content
// type is sent as FileContentType.
func (c *Client) Upload(ctx context.Context, signedURL, contentType string, data []byte) error {
	if contentType == "" {
		contentType = FileContentType
	}
	zap.L().Debug("uploading asset", zap.Int("bytes", len(data)), zap.String("content_type", contentType))
	return c.getUploader().Put(ctx, signedURL, contentType, data)
}

// Fetch downloads url.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	zap.L().Debug("fetching asset", zap.String("url", redact(url)))
	return c.getFetcher().Get(ctx, url)
}

func (c *Client) getUploader() Uploader {
	if c.uploader == nil {
		return httpSigned{c.HTTP, c.Timeout}
	}
	return c.uploader
}

func (c *Client) getFetcher() Fetcher {
	if c.fetcher == nil {
		return httpSigned{c.HTTP, c.Timeout}
	}
	return c.fetcher
}

// httpSigned is the production Uploader and Fetcher.
type httpSigned struct {
	hc      *http.Client
	timeout time.Duration
}

func (h httpSigned) Put(ctx context.Context, signedURL, contentType string, data []byte) error {
	return PutSignedURL(ctx, h.hc, signedURL, contentType, data, h.timeout)
}

func (h httpSigned) Get(ctx context.Context, url string) ([]byte, error) {
	return GetFile(ctx, h.hc, url, h.timeout)
}

// ContentTypeFor picks the content type for an upload. An explicit type wins;
// otherwise the extension of name is resolved, and when that yields nothing
// more specific the broad media class is used.
func ContentTypeFor(name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	ext := strings.ToLower(filepath.Ext(name))
	if t := mime.TypeByExtension(ext); t != "" {
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = t[:i]
		}
		return t
	}
	return mediaClass(ext)
}

func mediaClass(ext string) string {
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".heic", ".bmp", ".svg":
		return ImageContentType
	case ".mp4", ".mov", ".m4v", ".webm", ".avi", ".mkv":
		return VideoContentType
	}
	return FileContentType
}

// redact strips the query string, which carries the signature.
func redact(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}
