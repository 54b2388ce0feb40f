// Package media uploads portfolio assets (profile photo, resume, project
// images, client photos) to cloudinary and returns their public URLs.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/andriwebdev/portfolio-admin/internal/config"
)

// ErrNotConfigured is returned when an upload is attempted while the
// media section of the config is disabled or incomplete.
var ErrNotConfigured = errors.New("media storage is not configured")

// Uploader stores an asset and returns the URL to reference it by.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, name string) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New creates a cloudinary-backed Uploader. Returns nil (uploads
// disabled) when the media config is not enabled.
func New(cfg config.Media) (Uploader, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	if cfg.CloudName == "" {
		return nil, ErrNotConfigured
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	folder := cfg.Folder
	if folder == "" {
		folder = "portfolio"
	}

	return &cloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, name string) (string, error) {
	// prefix with a timestamp so re-uploads of the same filename do not
	// overwrite each other
	publicID := fmt.Sprintf("%s/%d-%s", u.folder, time.Now().UTC().Unix(), name)

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}

	return result.SecureURL, nil
}
