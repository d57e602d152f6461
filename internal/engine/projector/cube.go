package projector

import (
	"math"

	"go.trai.ch/orbis/internal/core/domain"
)

// uFlip gives the horizontal sign per face (order +X,-X,+Y,-Y,+Z,-Z) so that
// each face's pixel grid matches the layout the renderer produces. The
// vertical axis is flipped on every face: face images are stored top-down.
var uFlip = [domain.FaceCount]float64{-1, 1, 1, -1, -1, 1}

// Locate returns the cube face and face pixel a unit direction points into.
//
// The face is the one whose axis has the largest absolute component; exact
// ties resolve by the fixed precedence x, y, z, then positive before negative
// sign, so edge and corner directions land on the same face run after run.
// The two remaining components, divided by the dominant magnitude, give face
// plane coordinates in [-1, 1]; these map to pixels by truncation,
// floor(cubeSize*(c+1)/2), clamped to cubeSize-1. Locate never returns an
// out-of-range coordinate for a valid unit vector.
func Locate(dir Vec3, cubeSize int) domain.Sample {
	ax := math.Abs(dir.X)
	ay := math.Abs(dir.Y)
	az := math.Abs(dir.Z)

	var face domain.FaceID
	var a, b, mag float64
	switch {
	case ax >= ay && ax >= az:
		face, mag = domain.FaceXPos, ax
		if dir.X < 0 {
			face = domain.FaceXNeg
		}
		a, b = dir.Y/mag, dir.Z/mag
	case ay >= az:
		face, mag = domain.FaceYPos, ay
		if dir.Y < 0 {
			face = domain.FaceYNeg
		}
		a, b = dir.X/mag, dir.Z/mag
	default:
		face, mag = domain.FaceZPos, az
		if dir.Z < 0 {
			face = domain.FaceZNeg
		}
		a, b = dir.X/mag, dir.Y/mag
	}

	x := facePixel(uFlip[face]*a, cubeSize)
	y := facePixel(-b, cubeSize)
	return domain.Sample{Face: face, X: uint16(x), Y: uint16(y)}
}

// facePixel maps a face plane coordinate in [-1, 1] to an integer pixel in
// [0, size).
func facePixel(c float64, size int) int {
	p := int(float64(size) * (c + 1) / 2)
	if p < 0 {
		return 0
	}
	if p >= size {
		return size - 1
	}
	return p
}
