// Package domain contains the core types for the spherical resampling engine.
package domain

import "go.trai.ch/zerr"

// Projection identifies the map projection used for the output image.
type Projection uint8

const (
	// ProjectionEquirectangular maps longitude and latitude linearly onto x and y.
	ProjectionEquirectangular Projection = iota
	// ProjectionMercator maps longitude linearly and latitude through the
	// Mercator transform, which stretches toward the poles.
	ProjectionMercator
)

// ProjectionFromID converts the numeric projection selector (0 equirectangular,
// 1 Mercator) into a Projection.
func ProjectionFromID(id int) (Projection, error) {
	switch id {
	case 0:
		return ProjectionEquirectangular, nil
	case 1:
		return ProjectionMercator, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownProjection, "no projection with this id"), "id", id)
	}
}

// ParseProjection converts a projection name, as written in the
// configuration file, into a Projection.
func ParseProjection(name string) (Projection, error) {
	switch name {
	case "equirectangular":
		return ProjectionEquirectangular, nil
	case "mercator":
		return ProjectionMercator, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownProjection, "no projection with this name"), "name", name)
	}
}

// String returns the human-readable projection name.
func (p Projection) String() string {
	switch p {
	case ProjectionEquirectangular:
		return "equirectangular"
	case ProjectionMercator:
		return "mercator"
	default:
		return "unknown"
	}
}

// Tag returns the short tag used in cache file names.
func (p Projection) Tag() string {
	switch p {
	case ProjectionEquirectangular:
		return "eqrc"
	case ProjectionMercator:
		return "merc"
	default:
		return "unkn"
	}
}

// MaxCubeSize is the largest supported cube face edge, bounded by the 16-bit
// coordinate width of the serialized sampling index.
const MaxCubeSize = 1<<16 - 1

// Config is the immutable set of parameters that identifies one resampling
// setup. Two Configs with the same field values share a sampling index; any
// difference in any field yields a distinct cache identity.
type Config struct {
	// Width and Height are the output image dimensions in pixels.
	Width  int
	Height int
	// CubeSize is the edge length of each (square) cube face image.
	CubeSize int
	// SubWidth and SubHeight are the number of subsamples per output pixel
	// along each axis.
	SubWidth  int
	SubHeight int
	// Projection selects the output map projection.
	Projection Projection
	// CacheEnabled controls whether the sampling index is persisted and reused.
	CacheEnabled bool
}

// DefaultCubeSize returns the cube face size used when none is given:
// three quarters of the larger output dimension.
func DefaultCubeSize(width, height int) int {
	size := width * 3 / 4
	if h := height * 3 / 4; h > size {
		size = h
	}
	return size
}

// Validate checks the Config invariants. A Config that fails validation must
// not reach any other component.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		err := zerr.Wrap(ErrInvalidConfig, "output size must be positive")
		err = zerr.With(err, "width", c.Width)
		return zerr.With(err, "height", c.Height)
	}
	if c.CubeSize < 1 || c.CubeSize > MaxCubeSize {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "cube size out of range"), "cube_size", c.CubeSize)
	}
	if c.SubWidth < 1 || c.SubHeight < 1 {
		err := zerr.Wrap(ErrInvalidConfig, "subsampling must be positive")
		err = zerr.With(err, "sub_width", c.SubWidth)
		return zerr.With(err, "sub_height", c.SubHeight)
	}
	if c.Projection != ProjectionEquirectangular && c.Projection != ProjectionMercator {
		return zerr.With(zerr.Wrap(ErrUnknownProjection, "no projection with this id"), "id", int(c.Projection))
	}
	return nil
}

// SamplesPerPixel returns the number of subsamples contributing to each
// output pixel.
func (c Config) SamplesPerPixel() int {
	return c.SubWidth * c.SubHeight
}

// SampleCount returns the total number of samples in the sampling index for
// this Config: width * height * subWidth * subHeight, exactly.
func (c Config) SampleCount() int {
	return c.Width * c.Height * c.SamplesPerPixel()
}
