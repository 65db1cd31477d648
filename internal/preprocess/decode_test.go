package preprocess

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, gradient(w, h)))
	path := filepath.Join(dir, "face.png")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))
	return path
}

func TestOpenPath(t *testing.T) {
	path := writePNG(t, t.TempDir(), 12, 9)

	img, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())
}

func TestOpenFileURI(t *testing.T) {
	path := writePNG(t, t.TempDir(), 3, 3)

	img, err := Open("file://" + filepath.ToSlash(path))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestOpenGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestResolvePath(t *testing.T) {
	p, err := ResolvePath("photos/me.jpg")
	require.NoError(t, err)
	assert.Equal(t, "photos/me.jpg", p)

	p, err = ResolvePath("file:///tmp/me.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/tmp/me.jpg"), p)

	for _, ref := range []string{"", "https://example.com/me.jpg", "content://media/external/images/1", "file://server/me.jpg"} {
		_, err := ResolvePath(ref)
		assert.ErrorIs(t, err, ErrImageDecode, ref)
	}
}

func TestDecode(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, gradient(4, 2)))

	img, err := Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrImageDecode)
}
