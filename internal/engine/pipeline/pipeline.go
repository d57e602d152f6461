// Package pipeline drives a full resampling run: it obtains the sampling
// index for the configuration, then composites every requested frame in
// parallel.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/core/ports"
	"go.trai.ch/orbis/internal/engine/compositor"
	"go.trai.ch/orbis/internal/engine/projector"
	"go.trai.ch/zerr"
)

// Options controls a single pipeline run.
type Options struct {
	// Range selects the frames to composite.
	Range domain.FrameRange

	// Workers caps the number of frames composited concurrently.
	// Zero or negative means one worker per CPU.
	Workers int
}

// Pipeline composites frame sequences using a cached sampling index.
type Pipeline struct {
	indexes ports.IndexStore
	frames  ports.FrameStore
	logger  ports.Logger
	tel     ports.Telemetry
}

// New creates a Pipeline.
func New(indexes ports.IndexStore, frames ports.FrameStore, logger ports.Logger, tel ports.Telemetry) *Pipeline {
	return &Pipeline{
		indexes: indexes,
		frames:  frames,
		logger:  logger,
		tel:     tel,
	}
}

// Run composites every frame in the range. Frames fail independently: one bad
// frame does not stop the others, and the returned error joins the failures
// of all frames that could not be completed.
func (p *Pipeline) Run(ctx context.Context, cfg domain.Config, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := opts.Range.Validate(); err != nil {
		return err
	}

	idx, err := p.index(ctx, cfg)
	if err != nil {
		return err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu     sync.Mutex
		failed []error
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, frame := range opts.Range.Frames() {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := p.renderFrame(gctx, idx, frame); err != nil {
				p.logger.Error(err)
				mu.Lock()
				failed = append(failed, zerr.With(err, "frame", frame))
				mu.Unlock()
			}
			// Frame failures are collected, not returned: returning one
			// would cancel the group and abandon the remaining frames.
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if len(failed) > 0 {
		err := zerr.Wrap(errors.Join(failed...), domain.ErrFrameFailed.Error())
		err = zerr.With(err, "failed", len(failed))
		return zerr.With(err, "total", opts.Range.Len())
	}
	return nil
}

// index returns the sampling index for cfg, from the store when a valid
// entry exists, otherwise freshly built. A fresh index is persisted unless
// caching is disabled; a failed persist degrades to a warning since the
// index itself is already in hand.
func (p *Pipeline) index(ctx context.Context, cfg domain.Config) (*domain.SamplingIndex, error) {
	_, vtx := p.tel.Record(ctx, "sampling index")

	if cfg.CacheEnabled {
		idx, ok, err := p.indexes.Load(cfg)
		if err != nil {
			p.logger.Warn(fmt.Sprintf("index cache unreadable, rebuilding: %v", err))
		}
		if ok {
			vtx.Cached()
			vtx.Complete(nil)
			return idx, nil
		}
	}

	idx, err := projector.BuildIndex(cfg)
	if err != nil {
		vtx.Complete(err)
		return nil, err
	}

	if cfg.CacheEnabled {
		if err := p.indexes.Persist(idx); err != nil {
			p.logger.Warn(fmt.Sprintf("%v: %v", domain.ErrCachePersistFailed, err))
		}
	}
	vtx.Complete(nil)
	return idx, nil
}

// renderFrame reads the six cube faces of one frame, composites them and
// writes the spherical output frame.
func (p *Pipeline) renderFrame(ctx context.Context, idx *domain.SamplingIndex, frame int) error {
	_, vtx := p.tel.Record(ctx, fmt.Sprintf("frame %04d", frame))

	var faces compositor.FaceSet
	for _, face := range domain.Faces {
		img, err := p.frames.ReadFace(face, frame)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to read cube face"), "face", face.String())
			vtx.Complete(err)
			return err
		}
		faces[face] = img
	}

	out, err := compositor.Render(idx, faces)
	if err != nil {
		vtx.Complete(err)
		return err
	}

	if err := p.frames.WriteOutput(frame, out); err != nil {
		err = zerr.Wrap(err, "failed to write output frame")
		vtx.Complete(err)
		return err
	}

	vtx.Complete(nil)
	return nil
}
