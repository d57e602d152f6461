// Package indexcache implements the on-disk sampling index store: one file
// per distinct Config, named after every Config field so identical Configs
// always hit and different Configs never collide.
package indexcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IndexStore = (*Store)(nil)

// Factory opens cache stores rooted at a directory. It carries no state of
// its own; it exists so the store directory can be chosen per run while the
// factory is wired once.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns a Store rooted at dir, creating the directory if needed.
func (f *Factory) Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", dir)
	}
	return &Store{dir: dir}, nil
}

// Store implements ports.IndexStore using a file-per-Config strategy.
type Store struct {
	dir string
}

// Path returns the cache file path for a Config.
func (s *Store) Path(cfg domain.Config) string {
	name := fmt.Sprintf("index_w%d_h%d_cu%d_sw%d_sh%d_%s.bin",
		cfg.Width, cfg.Height, cfg.CubeSize, cfg.SubWidth, cfg.SubHeight, cfg.Projection.Tag())
	return filepath.Join(s.dir, name)
}

// Load returns the stored sampling index for cfg. A missing file is a miss.
// A file that fails the size, magic, or checksum validation is also a miss:
// a torn or corrupt cache entry must trigger a rebuild, never serve wrong
// mappings.
func (s *Store) Load(cfg domain.Config) (*domain.SamplingIndex, bool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(s.Path(cfg)) //nolint:gosec // path derives from validated Config fields
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read cache file"), "path", s.Path(cfg))
	}

	idx, err := decode(cfg, data)
	if err != nil {
		return nil, false, nil
	}
	return idx, true, nil
}

// Persist serializes idx and writes it under its Config key. The write goes
// through a temp file in the same directory and a rename, so concurrent
// builders of the same Config, which produce byte-identical content, can race
// without ever exposing a torn file.
func (s *Store) Persist(idx *domain.SamplingIndex) error {
	if err := idx.Validate(); err != nil {
		return err
	}

	data := encode(idx)
	path := s.Path(idx.Config)

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCachePersistFailed.Error())
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrCachePersistFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrCachePersistFailed.Error())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.Wrap(err, domain.ErrCachePersistFailed.Error())
	}
	return nil
}
