// Package filestore writes exported files to a local directory or an S3 bucket.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
)

// Local stores files under a base directory. Existing files with the same name are replaced.
type Local struct {
	BaseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{BaseDir: baseDir}
}

var _ gateways.FileStore = (*Local)(nil)

// Put writes r to BaseDir/name and returns the file path.
func (l *Local) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name")
	}
	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	// Write to a temp file first so a failed export never leaves a truncated file.
	tmp, err := os.CreateTemp(l.BaseDir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	dst := filepath.Join(l.BaseDir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("move %s into place: %w", name, err)
	}
	return dst, nil
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
