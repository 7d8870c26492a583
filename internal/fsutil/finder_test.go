package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.hcl"), "")
	writeFile(t, filepath.Join(root, "nested", "b.yaml"), "")
	writeFile(t, filepath.Join(root, "nested", "c.txt"), "")

	files, err := FindFilesByExtension(root, ".hcl", ".yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.yaml"),
	}, files)
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "plan.hcl")
	writeFile(t, path, "")

	files, err := FindFilesByExtension(path, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	_, err = FindFilesByExtension(path, ".yaml")
	require.Error(t, err)
}

func TestFindFilesByExtension_MissingPath(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFindFilesByExtension_PanicsWithoutExtension(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(".") })
}

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	writeFile(t, path, "[A]\n 1\n")

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "[A]\n 1\n", text)

	_, err = ReadText(path + ".missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestResolveRelative(t *testing.T) {
	assert.Equal(t, filepath.Join("plans", "day5.txt"), ResolveRelative(filepath.Join("plans", "plan.hcl"), "day5.txt"))
	assert.Equal(t, "/abs/day5.txt", ResolveRelative("plans/plan.hcl", "/abs/day5.txt"))
	assert.Equal(t, "", ResolveRelative("plans/plan.hcl", ""))
}
