package frameio_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orbis/internal/adapters/frameio"
	"go.trai.ch/orbis/internal/core/domain"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 7, A: 255})
		}
	}
	return img
}

func TestReadWriteRoundTrip(t *testing.T) {
	t.Parallel()

	rw := frameio.NewIO()
	src := testImage(6, 4)

	for _, ext := range []string{".png", ".bmp", ".tif"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "nested", "frame"+ext)
			require.NoError(t, rw.Write(path, src))

			got, err := rw.Read(path)
			require.NoError(t, err)
			require.Equal(t, src.Bounds(), got.Bounds())
			assert.Equal(t, src.Pix, got.Pix)
		})
	}
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	rw := frameio.NewIO()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := rw.Read(filepath.Join(t.TempDir(), "0001.png"))
		assert.Error(t, err)
	})

	t.Run("unknown extension", func(t *testing.T) {
		t.Parallel()
		_, err := rw.Read(filepath.Join(t.TempDir(), "0001.webp"))
		assert.ErrorIs(t, err, domain.ErrUnknownFormat)
	})

	t.Run("not an image", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "0001.png")
		require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o600))
		_, err := rw.Read(path)
		assert.Error(t, err)
	})
}

func TestWriteFailureLeavesNoOutput(t *testing.T) {
	t.Parallel()

	// A zero-size image makes the png encoder fail after the file layer is
	// already set up. The output path must stay absent and no temp file may
	// remain behind.
	dir := t.TempDir()
	path := filepath.Join(dir, "0001.png")

	err := frameio.NewIO().Write(path, image.NewNRGBA(image.Rectangle{}))
	require.Error(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteOverwritesExistingFrame(t *testing.T) {
	t.Parallel()

	rw := frameio.NewIO()
	path := filepath.Join(t.TempDir(), "0001.png")
	require.NoError(t, rw.Write(path, testImage(2, 2)))

	want := testImage(4, 4)
	require.NoError(t, rw.Write(path, want))

	got, err := rw.Read(path)
	require.NoError(t, err)
	assert.Equal(t, want.Pix, got.Pix)
}

func TestListFrames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"0010.png", "0002.png", "0001.png", "readme.txt", "frame.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0005.png"), 0o750))

	rw := frameio.NewIO()
	frames, err := rw.ListFrames(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "0001.png"),
		filepath.Join(dir, "0002.png"),
		filepath.Join(dir, "0010.png"),
	}
	assert.Equal(t, want, frames)
}

func TestExtForFormat(t *testing.T) {
	t.Parallel()

	for format, ext := range map[string]string{
		"png": ".png", "PNG": ".png",
		"jpeg": ".jpg", "jpg": ".jpg",
		"bmp":  ".bmp",
		"tiff": ".tif", "tif": ".tif",
	} {
		got, err := frameio.ExtForFormat(format)
		require.NoError(t, err, format)
		assert.Equal(t, ext, got)
	}

	_, err := frameio.ExtForFormat("gif")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestStoreLayout(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := frameio.NewStore(frameio.NewIO(), base, ".png")

	img := testImage(3, 3)
	require.NoError(t, store.WriteOutput(7, img))
	assert.Equal(t, filepath.Join(base, "spherical", "0007.png"), store.OutputPath(7))
	_, err := os.Stat(store.OutputPath(7))
	require.NoError(t, err)

	// Face reads come from the per-face subdirectories.
	facePath := filepath.Join(base, "xNeg", "0007.png")
	require.NoError(t, frameio.NewIO().Write(facePath, img))

	got, err := store.ReadFace(domain.FaceXNeg, 7)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, got.Pix)

	_, err = store.ReadFace(domain.FaceYPos, 7)
	assert.Error(t, err)
}
