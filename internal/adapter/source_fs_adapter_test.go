package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "synmut.dev/pkg/synmut/internal/model"
)

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "app.js")
	writeTestFile(t, path, "const x = 5;\n")

	content, err := adapter.ReadFile(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "const x = 5;\n", string(content))

	_, err = adapter.ReadFile(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.js")))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_ReadFile_ContextCancellation(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.ReadFile(ctx, "whatever.js")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "app.js")
	writeTestFile(t, path, "")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	info, err = adapter.FileInfo(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = adapter.FileInfo(context.Background(), m.Path(filepath.Join(root, "nope.js")))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_Walk_SkipsNodeModules(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "app.js"), "")
	mustMkdir(t, filepath.Join(root, "controllers"))
	writeTestFile(t, filepath.Join(root, "controllers", "ai.js"), "")
	mustMkdir(t, filepath.Join(root, "node_modules"))
	writeTestFile(t, filepath.Join(root, "node_modules", "dep.js"), "")

	var visited []string
	err := adapter.Walk(context.Background(), m.Path(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			visited = append(visited, path)
		}

		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "app.js"),
		filepath.Join(root, "controllers", "ai.js"),
	}, visited)
}

func TestIsJavaScriptFile(t *testing.T) {
	assert.True(t, IsJavaScriptFile("app.js"))
	assert.True(t, IsJavaScriptFile("lib/index.MJS"))
	assert.True(t, IsJavaScriptFile("conf.cjs"))
	assert.False(t, IsJavaScriptFile("main.go"))
	assert.False(t, IsJavaScriptFile("README"))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(path, 0o750))
}
