// Package projector computes the mapping from output image samples to cube
// face pixels: the inverse projection from image coordinates to viewing
// directions, and the location of each direction on the cube.
package projector

import (
	"math"

	"go.trai.ch/orbis/internal/core/domain"
)

// Vec3 is a direction in the engine's local axis convention:
// forward = +x, left = +y, up = +z.
type Vec3 struct {
	X, Y, Z float64
}

// mercatorEpsilon bounds v away from 0 and 1, where the inverse Mercator
// transform diverges toward the poles.
const mercatorEpsilon = 1e-9

// Direction returns the unit viewing direction for the normalized image
// position (u, v) in [0,1) x [0,1) under the given projection. u spans
// longitude -pi..pi left to right; v spans latitude +pi/2..-pi/2 top to
// bottom.
func Direction(u, v float64, p domain.Projection) Vec3 {
	lon := (u - 0.5) * 2 * math.Pi

	var lat float64
	if p == domain.ProjectionMercator {
		if v < mercatorEpsilon {
			v = mercatorEpsilon
		} else if v > 1-mercatorEpsilon {
			v = 1 - mercatorEpsilon
		}
		lat = 2*math.Atan(math.Exp(math.Pi*(1-2*v))) - math.Pi/2
	} else {
		lat = (0.5 - v) * math.Pi
	}

	colat := math.Pi/2 - lat
	s := math.Sin(colat)
	return Vec3{
		X: s * math.Cos(lon),
		Y: -s * math.Sin(lon),
		Z: math.Cos(colat),
	}
}

// SampleDirection returns the viewing direction for subsample (sx, sy) of
// output pixel (px, py). Subsamples are centered on an even grid within the
// pixel footprint. Out-of-range pixel or subsample indices violate the caller
// contract; the result for such inputs is meaningless.
func SampleDirection(cfg domain.Config, px, py, sx, sy int) Vec3 {
	u := (float64(px) + (float64(sx)+0.5)/float64(cfg.SubWidth)) / float64(cfg.Width)
	v := (float64(py) + (float64(sy)+0.5)/float64(cfg.SubHeight)) / float64(cfg.Height)
	return Direction(u, v, cfg.Projection)
}
