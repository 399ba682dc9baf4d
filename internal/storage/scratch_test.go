package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScratchDir_WriteOpenRemove(t *testing.T) {
	base := filepath.Join(t.TempDir(), "images")
	s, err := NewScratchDir(base)
	require.NoError(t, err)

	path, err := s.Write(context.Background(), []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, base, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "thumbnail-"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	f, err := s.Open(path)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, s.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing twice is fine.
	assert.NoError(t, s.Remove(path))
}

func TestScratchDir_SameInstantDoesNotCollide(t *testing.T) {
	s, err := NewScratchDir(t.TempDir())
	require.NoError(t, err)
	fixed := time.Unix(1700000000, 0)
	s.now = func() time.Time { return fixed }

	first, err := s.Write(context.Background(), []byte("a"))
	require.NoError(t, err)
	second, err := s.Write(context.Background(), []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewScratchDir_RequiresPath(t *testing.T) {
	_, err := NewScratchDir(" ")
	assert.Error(t, err)
}

func TestScratchDir_CanceledContext(t *testing.T) {
	s, err := NewScratchDir(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Write(ctx, []byte("a"))
	assert.ErrorIs(t, err, context.Canceled)
}
