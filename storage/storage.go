package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/linesmerrill/devcamper-api/config"
)

// Backends accepted by PHOTO_STORAGE
const (
	BackendDisk       = "disk"
	BackendCloudinary = "cloudinary"
	BackendS3         = "s3"
)

// PhotoStore persists uploaded photos
type PhotoStore interface {
	// Save stores the content of r under name and returns the reference kept
	// on the owning document
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// New returns the PhotoStore selected by conf.PhotoStorage
func New(conf *config.Config) (PhotoStore, error) {
	switch conf.PhotoStorage {
	case BackendDisk, "":
		return NewDisk(conf.FileUploadPath), nil
	case BackendCloudinary:
		return NewCloudinary(conf.CloudinaryCloudName, conf.CloudinaryAPIKey, conf.CloudinaryAPISecret, conf.CloudinaryFolder)
	case BackendS3:
		return NewS3(S3Config{
			Bucket:    conf.S3Bucket,
			Region:    conf.S3Region,
			Endpoint:  conf.S3Endpoint,
			AccessKey: conf.S3AccessKey,
			SecretKey: conf.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown photo storage %q", conf.PhotoStorage)
	}
}
