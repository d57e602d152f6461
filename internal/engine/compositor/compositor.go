// Package compositor resamples the six cube face rasters of one frame into a
// single spherical output raster, driven by a prebuilt sampling index.
package compositor

import (
	"image"

	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/zerr"
)

// FaceSet holds the six cube face rasters of one frame, indexed by FaceID.
type FaceSet [domain.FaceCount]*image.NRGBA

// Render produces the output frame for one set of faces. Every output pixel
// is the per-channel arithmetic mean (rounded to nearest) of its subsamples,
// each read from the face and pixel its index sample points at. Frames are
// independent; Render keeps no state between calls.
func Render(idx *domain.SamplingIndex, faces FaceSet) (*image.NRGBA, error) {
	cfg := idx.Config
	for i, face := range faces {
		if face == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrFaceSizeMismatch, "face raster missing"),
				"face", domain.FaceID(i).String())
		}
		if face.Bounds().Dx() != cfg.CubeSize || face.Bounds().Dy() != cfg.CubeSize {
			err := zerr.Wrap(domain.ErrFaceSizeMismatch, "face raster does not match cube size")
			err = zerr.With(err, "face", domain.FaceID(i).String())
			err = zerr.With(err, "width", face.Bounds().Dx())
			err = zerr.With(err, "height", face.Bounds().Dy())
			return nil, zerr.With(err, "cube_size", cfg.CubeSize)
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	n := uint32(cfg.SamplesPerPixel())
	half := n / 2

	si := 0
	oi := 0
	for py := 0; py < cfg.Height; py++ {
		for px := 0; px < cfg.Width; px++ {
			var r, g, b, a uint32
			for k := uint32(0); k < n; k++ {
				s := idx.Samples[si]
				si++

				face := faces[s.Face]
				fo := face.PixOffset(face.Bounds().Min.X+int(s.X), face.Bounds().Min.Y+int(s.Y))
				r += uint32(face.Pix[fo])
				g += uint32(face.Pix[fo+1])
				b += uint32(face.Pix[fo+2])
				a += uint32(face.Pix[fo+3])
			}

			out.Pix[oi] = uint8((r + half) / n)
			out.Pix[oi+1] = uint8((g + half) / n)
			out.Pix[oi+2] = uint8((b + half) / n)
			out.Pix[oi+3] = uint8((a + half) / n)
			oi += 4
		}
	}
	return out, nil
}
