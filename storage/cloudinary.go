package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// Cloudinary stores photos in a Cloudinary folder
type Cloudinary struct {
	uploader cloudinaryUploader
	folder   string
}

// NewCloudinary returns a Cloudinary store for the given account
func NewCloudinary(cloudName, apiKey, apiSecret, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &Cloudinary{uploader: &cld.Upload, folder: folder}, nil
}

// Save uploads r with name, minus its extension, as public id and returns the
// secure url of the asset
func (c *Cloudinary) Save(ctx context.Context, name, _ string, r io.Reader) (string, error) {
	res, err := c.uploader.Upload(ctx, r, uploader.UploadParams{
		PublicID:  strings.TrimSuffix(name, filepath.Ext(name)),
		Folder:    c.folder,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}
