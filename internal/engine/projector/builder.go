package projector

import "go.trai.ch/orbis/internal/core/domain"

// BuildIndex computes the full sampling index for the given Config: one
// sample per (output pixel, subsample) pair, pixel-major and subsample-minor.
// The cost is O(width * height * subWidth * subHeight); it is paid once per
// distinct Config and the result is immutable.
func BuildIndex(cfg domain.Config) (*domain.SamplingIndex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	samples := make([]domain.Sample, 0, cfg.SampleCount())
	for py := 0; py < cfg.Height; py++ {
		for px := 0; px < cfg.Width; px++ {
			for sy := 0; sy < cfg.SubHeight; sy++ {
				for sx := 0; sx < cfg.SubWidth; sx++ {
					dir := SampleDirection(cfg, px, py, sx, sy)
					samples = append(samples, Locate(dir, cfg.CubeSize))
				}
			}
		}
	}

	idx := &domain.SamplingIndex{Config: cfg, Samples: samples}
	// The locator cannot produce an out-of-range sample for a valid unit
	// direction; failing here is a defect, not a recoverable condition.
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	return idx, nil
}
