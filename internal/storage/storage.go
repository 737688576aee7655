// Package storage uploads and deletes binary assets such as squad logos.
package storage

import (
	"context"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
)

// Asset is a stored object: where clients fetch it and the id used to delete it.
type Asset struct {
	URL     string `json:"url"`
	AssetID string `json:"asset_id"`
}

type AssetStore interface {
	UploadImage(ctx context.Context, data []byte, category string) (Asset, error)
	DeleteImage(ctx context.Context, assetID string) error
}

// Disabled is used when no bucket is configured.
type Disabled struct{}

func (Disabled) UploadImage(context.Context, []byte, string) (Asset, error) {
	return Asset{}, apperrors.InvalidState("Asset storage is not configured")
}

func (Disabled) DeleteImage(context.Context, string) error {
	return apperrors.InvalidState("Asset storage is not configured")
}
