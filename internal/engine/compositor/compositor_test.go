package compositor_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/engine/compositor"
	"go.trai.ch/orbis/internal/engine/projector"
)

func flatFace(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// faceColors gives each face a distinct flat color, in FaceID order.
var faceColors = [domain.FaceCount]color.NRGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
	{R: 255, B: 255, A: 255},
	{G: 255, B: 255, A: 255},
}

func flatFaces(size int) compositor.FaceSet {
	var faces compositor.FaceSet
	for i := range faces {
		faces[i] = flatFace(size, faceColors[i])
	}
	return faces
}

func TestRenderFlatFaces(t *testing.T) {
	t.Parallel()

	// Each output pixel has a single sample, so its color must exactly
	// equal the color of the face that sample's direction points into.
	cfg := domain.Config{
		Width: 4, Height: 2, CubeSize: 8,
		SubWidth: 1, SubHeight: 1,
		Projection: domain.ProjectionEquirectangular,
	}
	idx, err := projector.BuildIndex(cfg)
	require.NoError(t, err)

	out, err := compositor.Render(idx, flatFaces(cfg.CubeSize))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 2), out.Bounds())

	for py := 0; py < cfg.Height; py++ {
		for px := 0; px < cfg.Width; px++ {
			face := idx.PixelSamples(px, py)[0].Face
			assert.Equal(t, faceColors[face], out.NRGBAAt(px, py), "pixel (%d, %d)", px, py)
		}
	}
}

func TestRenderAveragesSubsamples(t *testing.T) {
	t.Parallel()

	cfg := domain.Config{
		Width: 1, Height: 1, CubeSize: 4,
		SubWidth: 2, SubHeight: 1,
		Projection: domain.ProjectionEquirectangular,
	}

	// Hand-built index: both subsamples of the single pixel read from the
	// forward face, one black pixel and one white pixel.
	idx := &domain.SamplingIndex{
		Config: cfg,
		Samples: []domain.Sample{
			{Face: domain.FaceXPos, X: 0, Y: 0},
			{Face: domain.FaceXPos, X: 1, Y: 0},
		},
	}
	require.NoError(t, idx.Validate())

	faces := flatFaces(cfg.CubeSize)
	faces[domain.FaceXPos] = flatFace(cfg.CubeSize, color.NRGBA{A: 255})
	faces[domain.FaceXPos].SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out, err := compositor.Render(idx, faces)
	require.NoError(t, err)

	// Mean of 0 and 255 rounds up to 128.
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, out.NRGBAAt(0, 0))
}

func TestRenderRejectsBadFaces(t *testing.T) {
	t.Parallel()

	cfg := domain.Config{
		Width: 2, Height: 2, CubeSize: 4,
		SubWidth: 1, SubHeight: 1,
		Projection: domain.ProjectionEquirectangular,
	}
	idx, err := projector.BuildIndex(cfg)
	require.NoError(t, err)

	t.Run("missing face", func(t *testing.T) {
		t.Parallel()
		faces := flatFaces(cfg.CubeSize)
		faces[domain.FaceZNeg] = nil
		_, err := compositor.Render(idx, faces)
		assert.ErrorIs(t, err, domain.ErrFaceSizeMismatch)
	})

	t.Run("wrong size face", func(t *testing.T) {
		t.Parallel()
		faces := flatFaces(cfg.CubeSize)
		faces[domain.FaceXPos] = flatFace(3, color.NRGBA{A: 255})
		_, err := compositor.Render(idx, faces)
		assert.ErrorIs(t, err, domain.ErrFaceSizeMismatch)
	})
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := domain.Config{
		Width: 8, Height: 4, CubeSize: 6,
		SubWidth: 3, SubHeight: 3,
		Projection: domain.ProjectionMercator,
	}
	idx, err := projector.BuildIndex(cfg)
	require.NoError(t, err)

	faces := flatFaces(cfg.CubeSize)
	first, err := compositor.Render(idx, faces)
	require.NoError(t, err)
	second, err := compositor.Render(idx, faces)
	require.NoError(t, err)

	assert.Equal(t, first.Pix, second.Pix)
}
