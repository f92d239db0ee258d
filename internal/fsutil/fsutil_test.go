package fsutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fsys := afero.NewMemMapFs()

	require.NoError(t, WriteFileAtomic(fsys, "/app/src/lib/db/db.js", []byte("first"), 0644))
	require.NoError(t, WriteFileAtomic(fsys, "/app/src/lib/db/db.js", []byte("second"), 0644))

	data, err := afero.ReadFile(fsys, "/app/src/lib/db/db.js")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := afero.ReadDir(fsys, "/app/src/lib/db")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "db.js", entries[0].Name())
}

func TestWriteFileAtomic_ReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := WriteFileAtomic(fsys, "/app/out.txt", []byte("x"), 0644)
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/a.txt", nil, 0644))

	ok, err := Exists(fsys, "/a.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(fsys, "/b.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}
