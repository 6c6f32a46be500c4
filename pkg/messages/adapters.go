package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Adapter defines how message templates are loaded.
type Adapter interface {
	Load(ctx context.Context) (map[string]any, error)
}

// MapAdapter uses an in-memory nested map as the template source.
type MapAdapter struct {
	Data map[string]any
}

// Load implements the Adapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]any, error) {
	if a.Data == nil {
		return make(map[string]any), nil
	}
	return normalize(a.Data), nil
}

// FileAdapter reads templates from a file on disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// A nil parser is resolved from the file extension at load time.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the Adapter interface.
func (a *FileAdapter) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parseContent(ctx, a.parser, a.path, content)
}

// FSAdapter reads templates from a file inside an fs.FS, typically an embed.FS.
type FSAdapter struct {
	fsys   fs.FS
	parser Parser
	path   string
}

// NewFSAdapter creates a new FSAdapter instance.
// A nil parser is resolved from the file extension at load time.
func NewFSAdapter(fsys fs.FS, parser Parser, path string) *FSAdapter {
	return &FSAdapter{fsys: fsys, parser: parser, path: path}
}

// Load implements the Adapter interface.
func (a *FSAdapter) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := fs.ReadFile(a.fsys, a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parseContent(ctx, a.parser, a.path, content)
}

func parseContent(ctx context.Context, parser Parser, path string, content []byte) (map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	if parser == nil {
		parser = NewParserForFile(path)
		if parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
		}
	}

	data, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	return data, nil
}
