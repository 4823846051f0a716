package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	f := New()
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, f.MkdirAll(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	name := filepath.Join(dir, "info.json")
	require.NoError(t, f.WriteFile(name, []byte("{}")))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	require.NoError(t, f.Remove(name))
	_, err = os.Stat(name)
	assert.True(t, os.IsNotExist(err))

	tmp, err := f.TempFile(dir, "output-*.log")
	require.NoError(t, err)
	defer tmp.Close()
	assert.Equal(t, dir, filepath.Dir(tmp.Name()))
	assert.FileExists(t, tmp.Name())
}
