package pitch

import (
	"testing"

	"github.com/cwbudde/algo-pitch/internal/testutil"
)

func BenchmarkEstimate(b *testing.B) {
	signal := testutil.DeterministicSine(220, 16000, 1, 16000)

	for _, frameLength := range []int{512, 1024, 2048} {
		b.Run("frame_"+itoa(frameLength), func(b *testing.B) {
			est, err := NewEstimator(Config{
				SampleRate:  16000,
				FrameLength: frameLength,
				FrameStride: frameLength / 4,
				PitchMax:    2000,
			})
			if err != nil {
				b.Fatalf("NewEstimator() error = %v", err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := est.Estimate(signal); err != nil {
					b.Fatalf("Estimate() error = %v", err)
				}
			}
		})
	}
}

func BenchmarkEstimateNoise(b *testing.B) {
	signal := testutil.DeterministicNoise(5, 1, 16000)

	est, err := NewEstimator(Config{
		SampleRate:  16000,
		FrameLength: 1024,
		FrameStride: 256,
		PitchMax:    2000,
	})
	if err != nil {
		b.Fatalf("NewEstimator() error = %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := est.Estimate(signal); err != nil {
			b.Fatalf("Estimate() error = %v", err)
		}
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}

	buf := [20]byte{}

	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}
