package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// maxImportSize bounds the size of an import file read from disk.
const maxImportSize = 32 << 20

// ExportFiles reads and writes export documents on disk.
type ExportFiles struct {
	dir string
}

// NewExportFiles creates an export file adapter writing into dir.
// If dir is empty, the current working directory is used.
func NewExportFiles(dir string) *ExportFiles {
	if dir == "" {
		dir = "."
	}
	return &ExportFiles{dir: dir}
}

// Write stores content as fileName in the export directory and returns its path.
// An existing file with the same name is replaced.
func (e *ExportFiles) Write(ctx context.Context, fileName string, content []byte) (string, error) {
	path := filepath.Join(e.dir, filepath.Base(fileName))
	if err := writeFileAtomic(path, content); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", path, err)
	}
	return path, nil
}

// Read returns the contents of an import file.
func (e *ExportFiles) Read(ctx context.Context, path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("import path %s is a directory", path)
	}
	if info.Size() > maxImportSize {
		return nil, fmt.Errorf("import file %s is too large (%d bytes)", path, info.Size())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return content, nil
}
