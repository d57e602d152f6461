// Package config provides the configuration loader for orbis.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the name of the configuration file looked up in the working
// directory.
const Filename = "orbis.yaml"

// Settings are the effective tool settings: built-in defaults overlaid with
// the configuration file. Command line flags are merged on top by the caller.
type Settings struct {
	Width     int
	Height    int
	CubeSize  int // 0 derives the default from the output size
	SubWidth  int
	SubHeight int

	Projection string
	Format     string
	Workers    int // 0 means one worker per CPU

	Cache    bool
	CacheDir string // empty resolves to the user cache directory

	Frames domain.FrameRange
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Width:      1280,
		Height:     720,
		SubWidth:   3,
		SubHeight:  3,
		Projection: domain.ProjectionEquirectangular.String(),
		Format:     "png",
		Cache:      true,
		Frames:     domain.FrameRange{Start: 1, End: 250, Step: 1},
	}
}

// Loader reads orbis.yaml files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load returns the settings for a run started in the given working
// directory. A missing configuration file is not an error; the defaults
// apply unchanged.
func (l *Loader) Load(cwd string) (Settings, error) {
	settings := Defaults()

	path := filepath.Join(cwd, Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	l.logger.Info(fmt.Sprintf("using configuration file %s", path))
	file.apply(&settings)
	return settings, nil
}

// apply overlays the file's present fields onto the settings.
func (f *File) apply(s *Settings) {
	setInt(&s.Width, f.Render.Width)
	setInt(&s.Height, f.Render.Height)
	setInt(&s.CubeSize, f.Render.CubeSize)
	setInt(&s.SubWidth, f.Render.SubWidth)
	setInt(&s.SubHeight, f.Render.SubHeight)
	setString(&s.Projection, f.Render.Projection)
	setString(&s.Format, f.Render.Format)
	setInt(&s.Workers, f.Render.Workers)
	if f.Render.Cache != nil {
		s.Cache = *f.Render.Cache
	}
	setString(&s.CacheDir, f.Render.CacheDir)
	setInt(&s.Frames.Start, f.Frames.Start)
	setInt(&s.Frames.End, f.Frames.End)
	setInt(&s.Frames.Step, f.Frames.Step)
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
