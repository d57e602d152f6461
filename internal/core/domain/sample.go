package domain

import "go.trai.ch/zerr"

// FaceID identifies one of the six cube faces.
type FaceID uint8

const (
	// FaceXPos is the face at x == +1 (forward).
	FaceXPos FaceID = iota
	// FaceXNeg is the face at x == -1 (backward).
	FaceXNeg
	// FaceYPos is the face at y == +1 (left).
	FaceYPos
	// FaceYNeg is the face at y == -1 (right).
	FaceYNeg
	// FaceZPos is the face at z == +1 (up).
	FaceZPos
	// FaceZNeg is the face at z == -1 (down).
	FaceZNeg

	// FaceCount is the number of cube faces.
	FaceCount = 6
)

// Faces lists all six faces in their fixed precedence order.
var Faces = [FaceCount]FaceID{FaceXPos, FaceXNeg, FaceYPos, FaceYNeg, FaceZPos, FaceZNeg}

// String returns the face name, which is also the subdirectory the renderer
// writes that face's frames into.
func (f FaceID) String() string {
	switch f {
	case FaceXPos:
		return "xPos"
	case FaceXNeg:
		return "xNeg"
	case FaceYPos:
		return "yPos"
	case FaceYNeg:
		return "yNeg"
	case FaceZPos:
		return "zPos"
	case FaceZNeg:
		return "zNeg"
	default:
		return "invalid"
	}
}

// Valid reports whether f is one of the six enumerated faces.
func (f FaceID) Valid() bool {
	return f < FaceCount
}

// Sample locates the source color for one (output pixel, subsample) pair:
// the cube face and the integer pixel on that face.
type Sample struct {
	Face FaceID
	X    uint16
	Y    uint16
}

// SamplingIndex is the full per-pixel, per-subsample mapping from the output
// image into cube face pixels for one Config. Samples are ordered pixel-major
// (row by row) and subsample-minor. It is immutable once built.
type SamplingIndex struct {
	Config  Config
	Samples []Sample
}

// Validate checks the index invariants: exact sample count for the Config and
// every sample in range.
func (idx *SamplingIndex) Validate() error {
	if err := idx.Config.Validate(); err != nil {
		return err
	}
	if len(idx.Samples) != idx.Config.SampleCount() {
		err := zerr.Wrap(ErrMalformedIndex, "sample count does not match config")
		err = zerr.With(err, "samples", len(idx.Samples))
		return zerr.With(err, "expected", idx.Config.SampleCount())
	}
	size := idx.Config.CubeSize
	for i, s := range idx.Samples {
		if !s.Face.Valid() || int(s.X) >= size || int(s.Y) >= size {
			err := zerr.Wrap(ErrMalformedIndex, "sample out of range")
			err = zerr.With(err, "sample", i)
			err = zerr.With(err, "face", int(s.Face))
			err = zerr.With(err, "x", int(s.X))
			return zerr.With(err, "y", int(s.Y))
		}
	}
	return nil
}

// PixelSamples returns the subsamples for the output pixel (px, py), in
// subsample order. The returned slice aliases the index and must not be
// modified.
func (idx *SamplingIndex) PixelSamples(px, py int) []Sample {
	n := idx.Config.SamplesPerPixel()
	start := (py*idx.Config.Width + px) * n
	return idx.Samples[start : start+n]
}
