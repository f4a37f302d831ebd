package storage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveAndDelete(t *testing.T) {
	l, err := NewLocal(t.TempDir(), 5<<20)
	require.NoError(t, err)

	st, err := l.Save("product-families", "Pizza.PNG", "image/png", bytes.NewReader(pngBytes(t, 600, 400)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(st.URL, "/product-families/"))
	assert.True(t, strings.HasSuffix(st.URL, ".png"))
	assert.Equal(t, "Pizza.PNG", st.OriginalFilename)
	assert.NotEmpty(t, st.ThumbnailURL)
	assert.FileExists(t, l.Path(st.URL))
	assert.FileExists(t, l.Path(st.ThumbnailURL))

	require.NoError(t, l.Delete(st.URL))
	_, err = os.Stat(l.Path(st.URL))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(l.Path(st.ThumbnailURL))
	assert.True(t, os.IsNotExist(err))

	// second delete is a no-op
	require.NoError(t, l.Delete(st.URL))
}

func TestSaveRejectsNonImage(t *testing.T) {
	l, err := NewLocal(t.TempDir(), 5<<20)
	require.NoError(t, err)

	_, err = l.Save("products", "menu.pdf", "application/pdf", strings.NewReader("%PDF"))
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestSaveRejectsOversize(t *testing.T) {
	l, err := NewLocal(t.TempDir(), 16)
	require.NoError(t, err)

	_, err = l.Save("products", "big.png", "image/png", bytes.NewReader(make([]byte, 64)))
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	entries, _ := os.ReadDir(l.Path("/products"))
	assert.Empty(t, entries)
}

func TestSaveUndecodableImageHasNoThumbnail(t *testing.T) {
	l, err := NewLocal(t.TempDir(), 5<<20)
	require.NoError(t, err)

	st, err := l.Save("products", "x.jpg", "image/jpeg", strings.NewReader("not really a jpeg"))
	require.NoError(t, err)
	assert.Empty(t, st.ThumbnailURL)
	assert.EqualValues(t, len("not really a jpeg"), st.Size)
}
