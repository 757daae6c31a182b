package output

import (
	"bytes"
	"context"
	"os"

	"kilometers.ai/mcpspaces/internal/application/ports"
	"kilometers.ai/mcpspaces/internal/core/transform"
)

// FileWriter writes generated configurations to the local filesystem
type FileWriter struct {
	perm os.FileMode
}

// NewFileWriter creates a writer producing 0644 files
func NewFileWriter() *FileWriter {
	return &FileWriter{perm: 0o644}
}

// WriteConfig encodes {"servers": ...} and replaces the file at path.
// The write is not atomic; a failure can leave the file truncated.
// Filesystem errors are returned as-is.
func (w *FileWriter) WriteConfig(ctx context.Context, servers *transform.ServerSet, path string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := transform.EncodeDocument(&buf, servers); err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, buf.Bytes(), w.perm); err != nil {
		return 0, err
	}
	return int64(buf.Len()), nil
}

// ReadConfig parses a configuration previously written by WriteConfig
func ReadConfig(path string) (*transform.ServerSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return transform.DecodeDocument(f)
}

var _ ports.ConfigWriter = (*FileWriter)(nil)
