package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "aria.yml"))
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "player1")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "aria.yml")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Aria Vale", rec.FullName())
	assert.Equal(t, "player1", rec.Player)
	assert.Equal(t, path, rec.Path)
	assert.Equal(t, int64(len(src)), rec.FileSize)
	assert.False(t, rec.ModTime.IsZero())
	assert.Equal(t, "Neutral Good", rec.Alignment())
	assert.Equal(t, 7, rec.Skills[1])
	assert.Equal(t, []int{0, 2}, rec.Feats)
	require.Len(t, rec.Classes, 2)
	assert.Equal(t, 4, rec.Classes[0].Levels)
	assert.Equal(t, int64(-1), rec.WillSave)
	assert.Equal(t, int64(3), rec.ItemCount())
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode([]byte("  \n"))
	assert.ErrorIs(t, err, ErrEmptyRecord)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte("first_name: X\nhair: red\n"))
	assert.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("first_name: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.True(t, os.IsNotExist(err))
}
