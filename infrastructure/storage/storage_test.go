package storage

import (
	"path/filepath"
	"testing"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSink(t *testing.T) (*FileSink, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	sink := NewFileSink(fs, "output")
	require.NoError(t, sink.EnsureDir())
	return sink, fs
}

func TestFileSink_EnsureDir_Idempotent(t *testing.T) {
	// Arrange
	fs := afero.NewMemMapFs()
	sink := NewFileSink(fs, "output")

	// Act
	err1 := sink.EnsureDir()
	err2 := sink.EnsureDir()

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	isDir, err := afero.IsDir(fs, "output")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestFileSink_EnsureDir_ReadOnly(t *testing.T) {
	sink := NewFileSink(afero.NewReadOnlyFs(afero.NewMemMapFs()), "output")

	assert.Error(t, sink.EnsureDir())
}

func TestFileSink_Path(t *testing.T) {
	sink := NewFileSink(afero.NewMemMapFs(), "output")

	assert.Equal(t, filepath.Join("output", "example_com.png"), sink.Path("example_com.png"))
	assert.Equal(t, "output", sink.Dir())
}

func TestFileSink_WriteOverwrites(t *testing.T) {
	// Arrange
	sink, fs := createTestSink(t)

	// Act
	overwritten1, err1 := sink.Write("example_com.png", []byte("first"))
	overwritten2, err2 := sink.Write("example_com.png", []byte("second"))

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.False(t, overwritten1)
	assert.True(t, overwritten2)

	data, err := afero.ReadFile(fs, filepath.Join("output", "example_com.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	names, err := sink.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"example_com.png"}, names)
}

func TestFileSink_WriteReadOnly(t *testing.T) {
	sink := NewFileSink(afero.NewReadOnlyFs(afero.NewMemMapFs()), "output")

	overwritten, err := sink.Write("example_com.png", []byte("data"))

	assert.Error(t, err)
	assert.False(t, overwritten)
}

func TestFileSink_ReadAndExists(t *testing.T) {
	sink, _ := createTestSink(t)

	exists, err := sink.Exists("example_com.png")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = sink.Read("example_com.png")
	assert.Error(t, err)

	_, err = sink.Write("example_com.png", []byte("png"))
	require.NoError(t, err)

	exists, err = sink.Exists("example_com.png")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := sink.Read("example_com.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestFileSink_RejectsPathNames(t *testing.T) {
	sink, _ := createTestSink(t)

	for _, name := range []string{"", ".", "..", "../escape.png", "nested/file.png"} {
		_, err := sink.Write(name, []byte("x"))
		assert.EqualError(t, err, constant.ErrInvalidFileName, name)

		_, err = sink.Read(name)
		assert.EqualError(t, err, constant.ErrInvalidFileName, name)

		_, err = sink.Exists(name)
		assert.EqualError(t, err, constant.ErrInvalidFileName, name)
	}
}

func TestFileSink_ListSkipsOtherFiles(t *testing.T) {
	sink, fs := createTestSink(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join("output", "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, fs.MkdirAll(filepath.Join("output", "dir.png"), 0o755))
	_, err := sink.Write("a_com.png", []byte("x"))
	require.NoError(t, err)

	names, err := sink.List()

	require.NoError(t, err)
	assert.Equal(t, []string{"a_com.png"}, names)
}
