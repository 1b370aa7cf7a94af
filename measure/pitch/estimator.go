package pitch

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-pitch/dsp/frame"
)

// Estimator performs Yin pitch estimation with a fixed configuration.
//
// An Estimator is safe to reuse across calls: it carries only the normalized
// configuration, the derived lag bounds, and a precomputed FFT plan. Every
// call is a pure function of its input.
type Estimator struct {
	cfg     Config
	tauMin  int
	tauMax  int
	fftSize int
	plan    *algofft.Plan[complex128]
}

// NewEstimator validates cfg, derives the candidate lag range, and prepares
// the FFT plan shared by all frames.
func NewEstimator(cfg Config) (*Estimator, error) {
	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	fftSize := 2 * nextPowerOf2(cfg.FrameLength)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}

	return &Estimator{
		cfg:     cfg,
		tauMin:  int(cfg.SampleRate / cfg.PitchMax),
		tauMax:  cfg.FrameLength / 2,
		fftSize: fftSize,
		plan:    plan,
	}, nil
}

// Estimate is a one-shot Yin pitch estimation over signal.
func Estimate(signal []float64, cfg Config) ([]float64, error) {
	est, err := NewEstimator(cfg)
	if err != nil {
		return nil, err
	}

	return est.Estimate(signal)
}

// Config returns the normalized estimator configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Estimate returns one pitch value in Hz per analysis frame of signal.
//
// A signal shorter than one frame is zero-padded to a single frame. A result
// of 0 marks a frame where no periodicity was detected under the configured
// threshold.
func (e *Estimator) Estimate(signal []float64) ([]float64, error) {
	frames, err := frame.Slice(signal, e.cfg.FrameLength, e.cfg.FrameStride)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(frames))
	scratch := newDiffScratch(e.cfg.FrameLength, e.fftSize, e.tauMax)

	for i, fr := range frames {
		cmdf, err := e.cmdf(fr, scratch)
		if err != nil {
			return nil, err
		}

		if lag := searchPeriod(cmdf, e.tauMax, e.cfg.Threshold); lag > 0 {
			out[i] = e.cfg.SampleRate / float64(lag+e.tauMin+1)
		}
	}

	return out, nil
}

// EstimateBatch estimates each signal independently and preserves input
// order. Batch elements share no state; the output has one pitch slice per
// input signal.
func (e *Estimator) EstimateBatch(signals [][]float64) ([][]float64, error) {
	out := make([][]float64, len(signals))

	for i, signal := range signals {
		pitches, err := e.Estimate(signal)
		if err != nil {
			return nil, fmt.Errorf("pitch: batch element %d: %w", i, err)
		}

		out[i] = pitches
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
