package pitch

// Tracker aligns Yin frame centers with fixed-size downstream blocks: the
// signal is padded by one block of zeros on each end and analyzed with a
// window of three blocks advancing one block per frame, so frame k is
// centered on block k of the unpadded signal.
//
// Tracker carries no algorithmic content of its own; it is a thin caller of
// [Estimator].
type Tracker struct {
	est *Estimator
	pad int
}

// NewTracker creates a Tracker producing one pitch value per blockLength
// samples of input.
func NewTracker(sampleRate float64, blockLength int) (*Tracker, error) {
	est, err := NewEstimator(Config{
		SampleRate:  sampleRate,
		FrameLength: 3 * blockLength,
		FrameStride: blockLength,
	})
	if err != nil {
		return nil, err
	}

	return &Tracker{est: est, pad: blockLength}, nil
}

// Track estimates the pitch of each block of signal.
func (t *Tracker) Track(signal []float64) ([]float64, error) {
	padded := make([]float64, len(signal)+2*t.pad)
	copy(padded[t.pad:], signal)

	return t.est.Estimate(padded)
}
