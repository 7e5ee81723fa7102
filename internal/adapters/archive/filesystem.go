// Package archive stores receipt payloads as flat JSON files for audit.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	portsrepo "github.com/SscSPs/smart_pocket/internal/core/ports/repositories"
)

const (
	// RawSubDir holds raw LLM output.
	RawSubDir = "receipts/raw"
	// TransactionsSubDir holds submitted receipts.
	TransactionsSubDir = "receipts/transactions"
)

var _ portsrepo.ReceiptArchiveRepository = (*FileArchive)(nil)

// FileArchive writes files under a base directory.
type FileArchive struct {
	baseDir string
}

func NewFileArchive(baseDir string) *FileArchive {
	return &FileArchive{baseDir: baseDir}
}

// SaveJSON creates baseDir/subDir if needed and overwrites fileName with content.
func (a *FileArchive) SaveJSON(ctx context.Context, subDir, fileName, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fileName == "" || strings.ContainsAny(fileName, `/\`) || fileName == "." || fileName == ".." {
		return fmt.Errorf("invalid archive file name %q", fileName)
	}
	cleanSub := filepath.Clean(filepath.FromSlash(subDir))
	if filepath.IsAbs(cleanSub) || cleanSub == ".." || strings.HasPrefix(cleanSub, ".."+string(filepath.Separator)) {
		return errors.New("archive sub directory must stay inside the base directory")
	}

	dir := filepath.Join(a.baseDir, cleanSub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write archive file %s: %w", path, err)
	}
	return nil
}
