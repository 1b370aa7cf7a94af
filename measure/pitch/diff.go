package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// diffScratch holds the per-call working buffers of the difference engine.
// One scratch serves every frame of a call sequentially; nothing in it
// survives the call.
type diffScratch struct {
	timeIn   []complex128
	freq     []complex128
	corrTime []complex128
	re       []float64
	im       []float64
	pwr      []float64
	sq       []float64
	sqrcs    []float64
	diff     []float64
	cmdf     []float64
}

func newDiffScratch(frameLength, fftSize, tauMax int) *diffScratch {
	return &diffScratch{
		timeIn:   make([]complex128, fftSize),
		freq:     make([]complex128, fftSize),
		corrTime: make([]complex128, fftSize),
		re:       make([]float64, fftSize),
		im:       make([]float64, fftSize),
		pwr:      make([]float64, fftSize),
		sq:       make([]float64, frameLength),
		sqrcs:    make([]float64, frameLength+1),
		diff:     make([]float64, tauMax),
		cmdf:     make([]float64, tauMax-1),
	}
}

// cmdf computes the cumulative-mean-normalized difference function of one
// frame for lags tauMin+1..tauMax-1. Index i of the result corresponds to a
// period of i+tauMin+1 samples. The returned slice aliases the scratch and is
// only valid until the next call.
func (e *Estimator) cmdf(fr []float64, s *diffScratch) ([]float64, error) {
	// Autocorrelation via the FFT: corr = IFFT(FFT(frame) * conj(FFT(frame))).
	// The frame is zero-padded to twice the next power of two so the circular
	// product has no wraparound inside the first tauMax lags.
	for i := range s.timeIn {
		if i < len(fr) {
			s.timeIn[i] = complex(fr[i], 0)
		} else {
			s.timeIn[i] = 0
		}
	}

	if err := e.plan.Forward(s.freq, s.timeIn); err != nil {
		return nil, fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	for i, c := range s.freq {
		s.re[i] = real(c)
		s.im[i] = imag(c)
	}

	vecmath.Power(s.pwr, s.re, s.im)

	for i := range s.freq {
		s.freq[i] = complex(s.pwr[i], 0)
	}

	if err := e.plan.Inverse(s.corrTime, s.freq); err != nil {
		return nil, fmt.Errorf("pitch: inverse FFT failed: %w", err)
	}

	// Cumulative squared-sample sums: sqrcs[k] is the energy of the first k
	// samples.
	vecmath.MulBlock(s.sq, fr, fr)

	s.sqrcs[0] = 0
	for i, v := range s.sq {
		s.sqrcs[i+1] = s.sqrcs[i] + v
	}

	// Difference function (equation 6) via the energy identity, avoiding a
	// second correlation pass.
	total := s.sqrcs[len(fr)]
	for tau := range s.diff {
		corr := real(s.corrTime[tau])
		s.diff[tau] = total + s.sqrcs[len(fr)-tau] - s.sqrcs[tau] - 2*corr
	}

	// Cumulative mean normalization (equation 8) over lags 1..tauMax-1.
	running := 0.0
	for tau := 1; tau < len(s.diff); tau++ {
		running += s.diff[tau]

		denom := running
		if denom < cmdfFloor {
			denom = cmdfFloor
		}

		s.cmdf[tau-1] = s.diff[tau] * float64(tau) / denom
	}

	return s.cmdf[e.tauMin:], nil
}
