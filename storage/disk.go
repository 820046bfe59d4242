package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Disk stores photos as files in a directory
type Disk struct {
	dir string
}

// NewDisk returns a Disk writing into dir
func NewDisk(dir string) *Disk {
	return &Disk{dir: dir}
}

// Save writes r to dir/name, replacing any previous file
func (d *Disk) Save(ctx context.Context, name, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	f, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	return name, nil
}
