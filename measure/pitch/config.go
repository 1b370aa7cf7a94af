package pitch

import (
	"errors"
	"fmt"
)

const (
	defaultPitchMaxHz = 20000.0
	defaultThreshold  = 0.1

	// cmdfFloor guards the cumulative-mean denominator for silent or DC
	// frames, keeping the normalized difference finite.
	cmdfFloor = 1e-5
)

// ErrInvalidParameter indicates a configuration that cannot represent at
// least one full pitch period within half a frame, or a non-positive
// rate/length/stride, or an out-of-range threshold.
var ErrInvalidParameter = errors.New("pitch: invalid parameter")

// Config holds Yin estimation parameters.
type Config struct {
	// SampleRate is the signal sample rate in Hz.
	SampleRate float64

	// FrameLength is the analysis window length in samples. The longest
	// detectable period is FrameLength/2 samples.
	FrameLength int

	// FrameStride is the hop between consecutive windows in samples; it
	// determines the number of pitch values returned.
	FrameStride int

	// PitchMax is the expected upper bound of the pitch in Hz.
	// Defaults to 20000.
	PitchMax float64

	// Threshold is the Yin harmonicity threshold in (0, 1).
	// Defaults to 0.1.
	Threshold float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.PitchMax <= 0 {
		cfg.PitchMax = defaultPitchMaxHz
	}

	if cfg.Threshold == 0 {
		cfg.Threshold = defaultThreshold
	}

	return cfg
}

func validateConfig(cfg Config) error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidParameter, cfg.SampleRate)
	}

	if cfg.FrameLength <= 0 {
		return fmt.Errorf("%w: frame length must be > 0: %d", ErrInvalidParameter, cfg.FrameLength)
	}

	if cfg.FrameStride <= 0 {
		return fmt.Errorf("%w: frame stride must be > 0: %d", ErrInvalidParameter, cfg.FrameStride)
	}

	if cfg.Threshold <= 0 || cfg.Threshold >= 1 {
		return fmt.Errorf("%w: threshold must be in (0,1): %f", ErrInvalidParameter, cfg.Threshold)
	}

	tauMin := int(cfg.SampleRate / cfg.PitchMax)
	tauMax := cfg.FrameLength / 2

	if tauMin >= tauMax {
		return fmt.Errorf(
			"%w: shortest candidate period %d samples must be below half the frame length (%d): raise FrameLength or PitchMax",
			ErrInvalidParameter, tauMin, tauMax)
	}

	return nil
}
