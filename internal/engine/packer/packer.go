// Package packer folds groups of three grayscale frames into the color
// channels of a single output frame, tripling the frame rate a video codec
// sees without growing the file count.
package packer

import (
	"image"
	"strings"

	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/zerr"
)

// GroupSize is the number of input frames packed into one output frame, one
// per color channel.
const GroupSize = 3

// DefaultOrder packs the first frame of a group into red, the second into
// green and the third into blue.
const DefaultOrder = "RGB"

// Order maps each input frame of a group to a channel offset in an NRGBA
// pixel (0 red, 1 green, 2 blue).
type Order [GroupSize]int

// ParseOrder parses a packing order such as "RGB" or "BRG". The string names
// the channel for each frame position in turn and must use each of R, G and B
// exactly once.
func ParseOrder(s string) (Order, error) {
	var order Order
	if len(s) != GroupSize {
		return order, zerr.With(zerr.New("packing order must name exactly three channels"), "order", s)
	}

	var seen [GroupSize]bool
	for i, r := range strings.ToUpper(s) {
		var channel int
		switch r {
		case 'R':
			channel = 0
		case 'G':
			channel = 1
		case 'B':
			channel = 2
		default:
			return order, zerr.With(zerr.New("packing order may only use R, G and B"), "order", s)
		}
		if seen[channel] {
			return order, zerr.With(zerr.New("packing order repeats a channel"), "order", s)
		}
		seen[channel] = true
		order[i] = channel
	}
	return order, nil
}

// Groups splits the input frame paths into groups of three, in the given
// order. A trailing partial group is filled by repeating the last frame.
func Groups(paths []string) ([][GroupSize]string, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoInputFrames
	}

	groups := make([][GroupSize]string, 0, (len(paths)+GroupSize-1)/GroupSize)
	for i := 0; i < len(paths); i += GroupSize {
		var group [GroupSize]string
		for j := range group {
			if i+j < len(paths) {
				group[j] = paths[i+j]
			} else {
				group[j] = paths[len(paths)-1]
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Pack converts each frame of the group to grayscale and stores it in one
// channel of the output image, per the order. All frames must share the same
// bounds. Alpha is fully opaque.
func Pack(group [GroupSize]*image.NRGBA, order Order) (*image.NRGBA, error) {
	for i, frame := range group {
		if frame == nil {
			return nil, zerr.With(zerr.New("missing frame in pack group"), "position", i)
		}
		if frame.Bounds() != group[0].Bounds() {
			err := zerr.New("pack group frames differ in size")
			err = zerr.With(err, "position", i)
			err = zerr.With(err, "bounds", frame.Bounds().String())
			return nil, zerr.With(err, "want", group[0].Bounds().String())
		}
	}

	bounds := group[0].Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}

	for pos, frame := range group {
		channel := order[pos]
		for y := 0; y < bounds.Dy(); y++ {
			src := frame.Pix[frame.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			dst := out.Pix[out.PixOffset(0, y):]
			for x := 0; x < bounds.Dx(); x++ {
				dst[x*4+channel] = luma(src[x*4], src[x*4+1], src[x*4+2])
			}
		}
	}
	return out, nil
}

// luma converts a color to grayscale with the Rec. 709 weights, rounding to
// nearest.
func luma(r, g, b uint8) uint8 {
	return uint8((2126*uint32(r) + 7152*uint32(g) + 722*uint32(b) + 5000) / 10000)
}
