// Package app implements the application layer for orbis.
package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/orbis/internal/adapters/config"
	"go.trai.ch/orbis/internal/adapters/frameio"
	"go.trai.ch/orbis/internal/adapters/indexcache"
	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/core/ports"
	"go.trai.ch/orbis/internal/engine/packer"
	"go.trai.ch/orbis/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic behind the CLI commands.
type App struct {
	images   ports.ImageIO
	cache    *indexcache.Factory
	executor ports.Executor
	logger   ports.Logger
	tel      ports.Telemetry
}

// New creates a new App instance.
func New(
	images ports.ImageIO,
	cache *indexcache.Factory,
	executor ports.Executor,
	logger ports.Logger,
	tel ports.Telemetry,
) *App {
	return &App{
		images:   images,
		cache:    cache,
		executor: executor,
		logger:   logger,
		tel:      tel,
	}
}

// RenderOptions describes one resampling run.
type RenderOptions struct {
	// Dir is the directory holding the six cube face subdirectories. The
	// output frames go to its "spherical" subdirectory.
	Dir string

	// Settings are the effective settings, flags already merged.
	Settings config.Settings
}

// Render converts the cube face frames under the directory into spherical
// frames.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	s := opts.Settings

	proj, err := domain.ParseProjection(s.Projection)
	if err != nil {
		return err
	}
	cubeSize := s.CubeSize
	if cubeSize == 0 {
		cubeSize = domain.DefaultCubeSize(s.Width, s.Height)
	}
	cfg := domain.Config{
		Width:        s.Width,
		Height:       s.Height,
		CubeSize:     cubeSize,
		SubWidth:     s.SubWidth,
		SubHeight:    s.SubHeight,
		Projection:   proj,
		CacheEnabled: s.Cache,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ext, err := frameio.ExtForFormat(s.Format)
	if err != nil {
		return err
	}

	var indexes ports.IndexStore
	if cfg.CacheEnabled {
		dir, err := cacheDir(s.CacheDir)
		if err != nil {
			return err
		}
		if indexes, err = a.cache.Open(dir); err != nil {
			return err
		}
	}

	frames := frameio.NewStore(a.images, opts.Dir, ext)
	p := pipeline.New(indexes, frames, a.logger, a.tel)
	return p.Run(ctx, cfg, pipeline.Options{
		Range:   s.Frames,
		Workers: s.Workers,
	})
}

// cacheDir resolves the sampling index cache directory, defaulting to an
// orbis subdirectory of the user cache directory.
func cacheDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve cache directory")
	}
	return filepath.Join(base, "orbis"), nil
}

// PackOptions describes one frame packing run.
type PackOptions struct {
	InputDir  string
	OutputDir string

	// Order names the output channel for each frame of a group, e.g. "RGB".
	Order string

	// Format is the output image format.
	Format string

	// Start and End bound the input frame numbers, inclusive.
	Start int
	End   int
}

// Pack converts each group of three consecutive input frames to grayscale
// and packs them into the color channels of one output frame. The output
// frame keeps the frame number of the group's first frame.
func (a *App) Pack(ctx context.Context, opts PackOptions) error {
	order, err := packer.ParseOrder(opts.Order)
	if err != nil {
		return err
	}
	ext, err := frameio.ExtForFormat(opts.Format)
	if err != nil {
		return err
	}

	paths, err := a.images.ListFrames(opts.InputDir)
	if err != nil {
		return err
	}
	paths = filterFrames(paths, opts.Start, opts.End)

	groups, err := packer.Groups(paths)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "nothing to pack"), "dir", opts.InputDir)
	}

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(group[0]), filepath.Ext(group[0]))
		_, vtx := a.tel.Record(ctx, "pack "+name)

		out, err := a.packGroup(group, order)
		if err == nil {
			err = a.images.Write(filepath.Join(opts.OutputDir, name+ext), out)
		}
		vtx.Complete(err)
		if err != nil {
			return zerr.With(err, "frame", name)
		}
	}
	return nil
}

func (a *App) packGroup(group [packer.GroupSize]string, order packer.Order) (*image.NRGBA, error) {
	var frames [packer.GroupSize]*image.NRGBA
	for i, path := range group {
		img, err := a.images.Read(path)
		if err != nil {
			return nil, err
		}
		frames[i] = img
	}
	return packer.Pack(frames, order)
}

// filterFrames keeps the paths whose numeric stem lies in [start, end].
func filterFrames(paths []string, start, end int) []string {
	kept := paths[:0]
	for _, path := range paths {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		number, err := strconv.Atoi(stem)
		if err != nil {
			continue
		}
		if start <= number && number <= end {
			kept = append(kept, path)
		}
	}
	return kept
}

// AssembleOptions describes one movie assembly run.
type AssembleOptions struct {
	InputDir string

	// Output is the path of the movie file to produce.
	Output string

	FPS    int
	Width  int
	Height int

	// Stretch repeats every frame this many times, slowing the movie down.
	Stretch int

	// Padding appends this many copies of the last frame.
	Padding int
}

// Assemble encodes the frames of a directory into a movie with ffmpeg. The
// frames are staged into a temporary directory with contiguous numbering so
// stretch and padding reduce to plain file copies.
func (a *App) Assemble(ctx context.Context, opts AssembleOptions) error {
	if opts.Stretch < 1 {
		opts.Stretch = 1
	}

	paths, err := a.images.ListFrames(opts.InputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoInputFrames, "nothing to assemble"), "dir", opts.InputDir)
	}

	staging, err := os.MkdirTemp("", "orbis-assemble-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create staging directory")
	}
	defer os.RemoveAll(staging) //nolint:errcheck // best-effort cleanup

	ext := filepath.Ext(paths[0])
	frame := 1
	stage := func(src string) error {
		dst := filepath.Join(staging, domain.FrameName(frame, ext))
		frame++
		return copyFile(src, dst)
	}
	for _, path := range paths {
		for range opts.Stretch {
			if err := stage(path); err != nil {
				return err
			}
		}
	}
	for range opts.Padding {
		if err := stage(paths[len(paths)-1]); err != nil {
			return err
		}
	}

	_, vtx := a.tel.Record(ctx, "assemble "+filepath.Base(opts.Output))
	err = a.executor.Execute(ctx, domain.Command{
		Name: "ffmpeg",
		Args: []string{
			"-y",
			"-framerate", strconv.Itoa(opts.FPS),
			"-i", filepath.Join(staging, "%04d"+ext),
			"-vf", fmt.Sprintf("scale=%d:%d", opts.Width, opts.Height),
			"-pix_fmt", "yuv420p",
			opts.Output,
		},
	})
	vtx.Complete(err)
	if err != nil {
		return zerr.Wrap(err, domain.ErrAssembleFailed.Error())
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // staging within the input directory listing
	if err != nil {
		return zerr.Wrap(err, "failed to open frame")
	}
	defer in.Close() //nolint:errcheck // read-only file

	out, err := os.Create(dst) //nolint:gosec // staging file
	if err != nil {
		return zerr.Wrap(err, "failed to stage frame")
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to stage frame")
	}
	return out.Close()
}
