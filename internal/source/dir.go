// Package source implements the filesystem staging area ingestion reads
// from: a pending directory of dropped-in files and a processed directory
// files are moved to once ingested, so they are never rescanned.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davidbz/hearth/internal/domain"
)

const dirPermissions = 0o755

// Dir implements domain.SourceArea over two directories.
type Dir struct {
	pendingDir   string
	processedDir string
}

// NewDir creates both directories if missing and returns the source area.
func NewDir(pendingDir, processedDir string) (*Dir, error) {
	if err := os.MkdirAll(pendingDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("create pending dir: %w", err)
	}
	if err := os.MkdirAll(processedDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("create processed dir: %w", err)
	}
	return &Dir{pendingDir: pendingDir, processedDir: processedDir}, nil
}

// Pending lists the regular files waiting in the pending directory, with
// their content loaded. The processed directory is not scanned even when
// nested under the pending one.
func (d *Dir) Pending() ([]domain.SourceFile, error) {
	entries, err := os.ReadDir(d.pendingDir)
	if err != nil {
		return nil, fmt.Errorf("read pending dir: %w", err)
	}

	var files []domain.SourceFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(d.pendingDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read source file %s: %w", entry.Name(), err)
		}
		files = append(files, domain.SourceFile{
			Name:    entry.Name(),
			Content: content,
		})
	}
	return files, nil
}

// MoveToProcessed relocates one pending file into the processed directory.
func (d *Dir) MoveToProcessed(name string) error {
	if strings.ContainsRune(name, os.PathSeparator) || name == "" {
		return errors.New("source name must be a bare filename")
	}
	src := filepath.Join(d.pendingDir, name)
	dst := filepath.Join(d.processedDir, name)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("move %s to processed: %w", name, err)
	}
	return nil
}
