// Package frame provides overlapping fixed-length window extraction from
// time-domain signals.
//
// Frames are the unit of analysis for short-time algorithms: window k covers
// samples [k*stride, k*stride+length). A signal shorter than one window is
// zero-padded on the right so that at least one frame is always produced;
// beyond that, only complete windows are emitted and trailing samples that
// cannot fill a window are dropped.
package frame

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a non-positive frame length or stride.
var ErrInvalidParameter = errors.New("frame: invalid parameter")

func validate(frameLength, frameStride int) error {
	if frameLength <= 0 {
		return fmt.Errorf("%w: frame length must be > 0: %d", ErrInvalidParameter, frameLength)
	}

	if frameStride <= 0 {
		return fmt.Errorf("%w: frame stride must be > 0: %d", ErrInvalidParameter, frameStride)
	}

	return nil
}

// Count returns the number of frames Slice produces for a signal of timeLen
// samples: max(1, (timeLen-frameLength)/frameStride + 1).
func Count(timeLen, frameLength, frameStride int) (int, error) {
	if err := validate(frameLength, frameStride); err != nil {
		return 0, err
	}

	if timeLen < frameLength {
		return 1, nil
	}

	return (timeLen-frameLength)/frameStride + 1, nil
}

// Slice windows signal into overlapping frames of frameLength samples spaced
// frameStride samples apart. The returned frames are freshly allocated and do
// not alias signal.
func Slice(signal []float64, frameLength, frameStride int) ([][]float64, error) {
	n, err := Count(len(signal), frameLength, frameStride)
	if err != nil {
		return nil, err
	}

	frames := make([][]float64, n)
	for k := range frames {
		out := make([]float64, frameLength)
		copy(out, signal[k*frameStride:])
		frames[k] = out
	}

	return frames, nil
}
