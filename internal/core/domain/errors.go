package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfig is returned when a Config field is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnknownProjection is returned for a projection id that is neither
	// equirectangular (0) nor Mercator (1).
	ErrUnknownProjection = zerr.New("unknown projection")

	// ErrInvalidFrameRange is returned when the frame selection is empty or
	// steps backward.
	ErrInvalidFrameRange = zerr.New("invalid frame range")

	// ErrMalformedIndex is returned when a sampling index violates its count
	// or range invariants. Reaching this from the builder is a defect.
	ErrMalformedIndex = zerr.New("malformed sampling index")

	// ErrFaceSizeMismatch is returned when a cube face image does not match
	// the configured cube size.
	ErrFaceSizeMismatch = zerr.New("cube face size mismatch")

	// ErrFrameFailed is returned when one frame could not be composited.
	// Other frames of the same run continue unaffected.
	ErrFrameFailed = zerr.New("frame processing failed")

	// ErrCachePersistFailed is returned when the sampling index cannot be
	// written to the cache store.
	ErrCachePersistFailed = zerr.New("failed to persist sampling index")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownFormat is returned for an image format with no registered codec.
	ErrUnknownFormat = zerr.New("unsupported image format")

	// ErrNoInputFrames is returned when a pack or assemble run finds no
	// numbered frames in its input directory.
	ErrNoInputFrames = zerr.New("no input frames found")

	// ErrAssembleFailed is returned when the external encoder invocation fails.
	ErrAssembleFailed = zerr.New("video assembly failed")
)
