package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/gridboard/internal/ports/primary"
)

// ExportFileStore reads and writes export documents.
type ExportFileStore interface {
	Write(ctx context.Context, fileName string, content []byte) (string, error)
	Read(ctx context.Context, path string) ([]byte, error)
}

// TransferAdapter translates export and import commands to TransferService calls.
type TransferAdapter struct {
	service primary.TransferService
	files   ExportFileStore
	out     io.Writer
}

// NewTransferAdapter creates a new TransferAdapter.
func NewTransferAdapter(service primary.TransferService, files ExportFileStore, out io.Writer) *TransferAdapter {
	return &TransferAdapter{
		service: service,
		files:   files,
		out:     out,
	}
}

// Export writes the board document to a dated export file.
func (a *TransferAdapter) Export(ctx context.Context) (string, error) {
	result, err := a.service.Export(ctx)
	if err != nil {
		return "", err
	}
	path, err := a.files.Write(ctx, result.FileName, result.Content)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(a.out, "%s Exported %d grids to %s\n", ok(), len(result.Document.Grids), path)
	return path, nil
}

// ExportTo writes the export document to w instead of a file.
func (a *TransferAdapter) ExportTo(ctx context.Context, w io.Writer) error {
	result, err := a.service.Export(ctx)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(result.Content, '\n')); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Import replaces the board with the contents of an export file.
func (a *TransferAdapter) Import(ctx context.Context, path string) (*primary.ImportResult, error) {
	payload, err := a.files.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	result, err := a.service.Import(ctx, payload)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "%s Imported %d grids from %s\n", ok(), result.GridCount, path)
	if result.CurrentGridID != "" {
		fmt.Fprintf(a.out, "  Current grid: %s\n", result.CurrentGridID)
	}
	return result, nil
}
