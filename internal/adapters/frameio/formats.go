package frameio

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"sort"
	"strings"

	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type codec struct {
	decode func(io.Reader) (image.Image, error)
	encode func(io.Writer, image.Image) error
}

// codecs maps a file extension to its image codec. png and jpeg come from the
// standard library, bmp and tiff from golang.org/x/image.
var codecs = map[string]codec{
	".png": {
		decode: png.Decode,
		encode: func(w io.Writer, img image.Image) error { return png.Encode(w, img) },
	},
	".jpg": {
		decode: jpeg.Decode,
		encode: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		},
	},
	".bmp": {
		decode: bmp.Decode,
		encode: bmp.Encode,
	},
	".tif": {
		decode: tiff.Decode,
		encode: func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) },
	},
}

// formatExt maps a format name, as given on the command line, to the file
// extension of its codec.
var formatExt = map[string]string{
	"png":  ".png",
	"jpg":  ".jpg",
	"jpeg": ".jpg",
	"bmp":  ".bmp",
	"tif":  ".tif",
	"tiff": ".tif",
}

// ExtForFormat returns the file extension for a format name.
func ExtForFormat(format string) (string, error) {
	ext, ok := formatExt[strings.ToLower(format)]
	if !ok {
		err := zerr.Wrap(domain.ErrUnknownFormat, "no codec for this format name")
		err = zerr.With(err, "format", format)
		return "", zerr.With(err, "supported", supportedFormats())
	}
	return ext, nil
}

func supportedFormats() string {
	names := make([]string, 0, len(formatExt))
	for name := range formatExt {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func codecForPath(path string) (codec, error) {
	dot := strings.LastIndex(path, ".")
	if dot < 0 {
		return codec{}, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "file has no extension"), "path", path)
	}
	ext := strings.ToLower(path[dot:])
	if alias, ok := formatExt[ext[1:]]; ok {
		ext = alias
	}
	c, ok := codecs[ext]
	if !ok {
		return codec{}, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "no codec for this extension"), "path", path)
	}
	return c, nil
}
