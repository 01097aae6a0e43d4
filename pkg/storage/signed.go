package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxErrorBody bounds how much of a failed response is quoted in errors.
const maxErrorBody = 512

// PutSignedURL uploads data with a PUT to signedURL. timeout, when positive,
// bounds the whole request. Any non-2xx response is an error.
func PutSignedURL(ctx context.Context, hc *http.Client, signedURL, contentType string, data []byte, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(data))

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("upload to signed url: %w", err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("upload", resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// GetFile downloads url. timeout, when positive, bounds the whole request.
// Any non-2xx response is an error.
func GetFile(ctx context.Context, hc *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch asset: %w", err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError("fetch", resp)
	}
	return io.ReadAll(resp.Body)
}

func statusError(what string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if len(b) == 0 {
		return fmt.Errorf("%s failed with status %d", what, resp.StatusCode)
	}
	return fmt.Errorf("%s failed with status %d: %s", what, resp.StatusCode, bytes.TrimSpace(b))
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		zap.L().Debug("failed to close response body", zap.Error(err))
	}
}
