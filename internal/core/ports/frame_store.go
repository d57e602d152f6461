package ports

import (
	"image"

	"go.trai.ch/orbis/internal/core/domain"
)

// FrameStore reads the renderer's cube face frames and writes resampled
// output frames, both under one base directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=frame_store.go -destination=mocks/mock_frame_store.go -package=mocks
type FrameStore interface {
	// ReadFace reads the raster for one cube face of one frame.
	ReadFace(face domain.FaceID, frame int) (*image.NRGBA, error)

	// WriteOutput writes a finished spherical frame. Frames are written
	// whole; no partial frame is ever left behind as a valid output.
	WriteOutput(frame int, img *image.NRGBA) error

	// OutputPath returns the path WriteOutput would write the frame to.
	OutputPath(frame int) string
}

// ImageIO reads and writes single rasters by path, and lists frame files.
// It serves the pack and assemble flows, which work on arbitrary frame
// directories rather than the render layout.
type ImageIO interface {
	// Read decodes the raster at path.
	Read(path string) (*image.NRGBA, error)

	// Write encodes img to path, choosing the codec by file extension.
	Write(path string, img *image.NRGBA) error

	// ListFrames returns the numerically named frame files of dir
	// (e.g. 0001.png), sorted by frame number.
	ListFrames(dir string) ([]string, error)
}
