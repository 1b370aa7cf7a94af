// Package pitch estimates the fundamental frequency of a signal over time
// using the Yin algorithm.
//
// The signal is windowed into overlapping frames and each frame is scored
// independently: an FFT-based autocorrelation yields the Yin difference
// function (de Cheveigné & Kawahara, equation 6), cumulative-mean
// normalization turns it into a per-lag score (equation 8), and a threshold
// search picks the first local minimum below the harmonicity threshold. The
// selected lag is converted to a frequency in Hz; frames without a qualifying
// lag report 0 (no periodicity detected).
//
// Accuracy improves with higher sample rates and a tighter PitchMax bound.
// For speech, a frame stride near 10 ms and PitchMax around 500 Hz are common
// choices.
//
// One-shot use:
//
//	pitches, err := pitch.Estimate(signal, pitch.Config{
//	    SampleRate:  16000,
//	    FrameLength: 1024,
//	    FrameStride: 256,
//	    PitchMax:    2000,
//	})
//
// For repeated calls with the same configuration, construct an [Estimator]
// once and reuse it; the FFT plan is shared across calls and calls are pure.
package pitch
