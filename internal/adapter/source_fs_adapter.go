// Package adapter contains the infrastructure adapters of the lint harness: the
// linter engines and filesystem access.
package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	m "synmut.dev/pkg/synmut/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the harness needs so the
// domain can exercise missing and unreadable files without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence or
	// tell files and directories apart.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Walk traverses root recursively, calling fn for every entry.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - target files are chosen by the operator running the harness
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// Walk iterates over every entry below root, skipping node_modules and VCS folders.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err == nil && info.IsDir() && path != string(root) {
			base := filepath.Base(path)
			if base == "node_modules" || base == ".git" {
				return filepath.SkipDir
			}
		}

		return fn(path, info, err)
	})
}

// IsJavaScriptFile reports whether path has a JavaScript source extension.
func IsJavaScriptFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return true
	default:
		return false
	}
}
