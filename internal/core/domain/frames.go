package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// OutputDirName is the subdirectory of the frame base directory that receives
// the resampled spherical frames.
const OutputDirName = "spherical"

// FrameName returns the file name (without directory) for a frame number,
// zero-padded to four digits as the renderer produces them.
func FrameName(frame int, ext string) string {
	return fmt.Sprintf("%04d%s", frame, ext)
}

// FrameRange selects the frames of an animation: Start through End inclusive,
// advancing by Step.
type FrameRange struct {
	Start int
	End   int
	Step  int
}

// Validate checks that the range is non-empty and moves forward.
func (r FrameRange) Validate() error {
	if r.Step < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidFrameRange, "step must be positive"), "step", r.Step)
	}
	if r.Start < 0 || r.End < r.Start {
		err := zerr.Wrap(ErrInvalidFrameRange, "range must move forward")
		err = zerr.With(err, "start", r.Start)
		return zerr.With(err, "end", r.End)
	}
	return nil
}

// Frames returns the frame numbers in the range, in order.
func (r FrameRange) Frames() []int {
	var frames []int
	for f := r.Start; f <= r.End; f += r.Step {
		frames = append(frames, f)
	}
	return frames
}

// Len returns the number of frames in the range.
func (r FrameRange) Len() int {
	if r.End < r.Start || r.Step < 1 {
		return 0
	}
	return (r.End-r.Start)/r.Step + 1
}

// Command is an external program invocation, executed through the Executor
// port. It is used to delegate video assembly to ffmpeg.
type Command struct {
	// Name is the program to run, looked up on PATH if not absolute.
	Name string
	// Args are the program arguments, excluding the program name.
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
}
