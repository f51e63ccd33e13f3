// Package storage stores uploaded image blobs on local disk and hands back
// the relative reference path the rest of the system stores and echoes. The
// blob is never inspected.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Disk writes blobs under Dir and returns paths below the /uploads/ prefix.
type Disk struct {
	Dir string
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{Dir: dir}, nil
}

// Save streams the blob to a generated filename keeping the original
// extension, and returns the relative reference path.
func (d *Disk) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)

	f, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
