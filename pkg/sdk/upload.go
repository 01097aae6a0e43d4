package sdk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dashxhq/dashx-go/pkg/dashxerr"
	"github.com/dashxhq/dashx-go/pkg/model"
	"github.com/dashxhq/dashx-go/pkg/storage"
)

// UploadAssetInput describes a file to upload. Resource and Attribute attach
// the asset to a record field.
type UploadAssetInput struct {
	Name        string
	ContentType string
	Data        []byte
	Resource    string
	Attribute   string
}

// UploadAsset reserves an asset with prepareAsset, PUTs Data to the returned
// signed URL and polls the asset until its upload status leaves PENDING. The
// last observed asset is returned; if polling runs out while it is still
// pending, the pending asset is returned together with an error.
func (c *Client) UploadAsset(ctx context.Context, in UploadAssetInput) (*model.Asset, error) {
	const op = "dashx.upload_asset"

	if strings.TrimSpace(in.Name) == "" {
		return nil, dashxerr.Validation(op, "Asset name cannot be null or empty")
	}
	svc, err := c.services(op)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	store, interval, attempts := c.store, c.pollInterval, c.pollAttempts
	c.mu.RUnlock()
	if store == nil {
		return nil, errNotConfigured(op)
	}

	contentType := storage.ContentTypeFor(in.Name, in.ContentType)
	prepared, err := svc.assets.Prepare(ctx, model.PrepareAssetInput{
		Name:      in.Name,
		MimeType:  contentType,
		Size:      int64(len(in.Data)),
		Resource:  model.String(in.Resource),
		Attribute: model.String(in.Attribute),
	})
	if err != nil {
		return nil, err
	}

	signedURL := prepared.UploadURL()
	if signedURL == "" {
		return nil, dashxerr.Wrap(op, dashxerr.KindGraphQL, fmt.Errorf("asset %s has no upload url", prepared.ID))
	}
	if err := store.Upload(ctx, signedURL, contentType, in.Data); err != nil {
		return nil, dashxerr.Wrap(op, dashxerr.KindTransport, err)
	}

	return c.awaitUpload(ctx, svc.assets, prepared.ID, interval, attempts)
}

// awaitUpload polls asset(id) every interval, at most attempts times, until
// the upload is no longer pending.
func (c *Client) awaitUpload(ctx context.Context, assets *AssetService, id string, interval time.Duration, attempts int) (*model.Asset, error) {
	const op = "dashx.upload_asset"

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *model.Asset
	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
		}

		asset, err := assets.Get(ctx, id)
		if err != nil {
			return last, err
		}
		if asset != nil {
			last = asset
			if asset.UploadStatus != "" && asset.UploadStatus != model.AssetUploadStatusPending {
				zap.L().Debug("asset upload settled", zap.String("id", id), zap.String("status", string(asset.UploadStatus)))
				if asset.UploadStatus == model.AssetUploadStatusFailed {
					return asset, dashxerr.Wrap(op, dashxerr.KindTransport,
						fmt.Errorf("asset %s upload failed: %s", id, model.Deref(asset.UploadStatusReason)))
				}
				return asset, nil
			}
		}
		zap.L().Debug("asset upload pending", zap.String("id", id), zap.Int("attempt", i+1))
	}
	return last, dashxerr.Wrap(op, dashxerr.KindTransport, fmt.Errorf("asset %s still pending after %d checks", id, attempts))
}

// FetchAsset downloads the content of a published asset.
func (c *Client) FetchAsset(ctx context.Context, asset *model.Asset) ([]byte, error) {
	const op = "dashx.fetch_asset"

	if asset == nil || model.Deref(asset.URL) == "" {
		return nil, dashxerr.Validation(op, "asset has no url")
	}
	c.mu.RLock()
	store := c.store
	c.mu.RUnlock()
	if store == nil {
		return nil, errNotConfigured(op)
	}

	b, err := store.Fetch(ctx, *asset.URL)
	if err != nil {
		return nil, dashxerr.Wrap(op, dashxerr.KindTransport, err)
	}
	return b, nil
}
