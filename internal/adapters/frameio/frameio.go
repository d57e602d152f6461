// Package frameio reads and writes frame rasters for the engine: the
// renderer's cube face images and the resampled spherical output frames.
package frameio

import (
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ImageIO    = (*IO)(nil)
	_ ports.FrameStore = (*Store)(nil)
)

// IO implements ports.ImageIO on the local filesystem, choosing codecs by
// file extension.
type IO struct{}

// NewIO creates a new IO.
func NewIO() *IO {
	return &IO{}
}

// Read decodes the raster at path into NRGBA.
func (rw *IO) Read(path string) (*image.NRGBA, error) {
	c, err := codecForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open image"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	img, err := c.decode(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode image"), "path", path)
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	nrgba := image.NewNRGBA(img.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return nrgba, nil
}

// Write encodes img to path, creating parent directories as needed. The
// encoding goes to a temp file in the same directory followed by a rename, so
// a failed or aborted write never leaves a partial raster at the output path.
func (rw *IO) Write(path string, img *image.NRGBA) error {
	c, err := codecForPath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create image file"), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after successful rename

	if err := c.encode(tmp, img); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to encode image"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write image"), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write image"), "path", path)
	}
	return nil
}

// ListFrames returns the numerically named frame files of dir, as full
// paths sorted by frame number.
func (rw *IO) ListFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read frame directory"), "dir", dir)
	}

	type frameFile struct {
		number int
		path   string
	}
	var frames []frameFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		number, err := strconv.Atoi(stem)
		if err != nil {
			continue
		}
		frames = append(frames, frameFile{number: number, path: filepath.Join(dir, name)})
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].number < frames[j].number })

	paths := make([]string, len(frames))
	for i, f := range frames {
		paths[i] = f.path
	}
	return paths, nil
}

// Store implements ports.FrameStore over the renderer's directory layout:
// one subdirectory per face name plus "spherical" for output, frame files
// named by zero-padded frame number.
type Store struct {
	io   ports.ImageIO
	base string
	ext  string
}

// NewStore creates a frame store rooted at base, using the given file
// extension for all frames.
func NewStore(io ports.ImageIO, base, ext string) *Store {
	return &Store{io: io, base: base, ext: ext}
}

// ReadFace reads the raster for one cube face of one frame.
func (s *Store) ReadFace(face domain.FaceID, frame int) (*image.NRGBA, error) {
	return s.io.Read(filepath.Join(s.base, face.String(), domain.FrameName(frame, s.ext)))
}

// WriteOutput writes a finished spherical frame.
func (s *Store) WriteOutput(frame int, img *image.NRGBA) error {
	return s.io.Write(s.OutputPath(frame), img)
}

// OutputPath returns the path WriteOutput writes the frame to.
func (s *Store) OutputPath(frame int) string {
	return filepath.Join(s.base, domain.OutputDirName, domain.FrameName(frame, s.ext))
}
