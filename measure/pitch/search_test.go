package pitch

import "testing"

func TestSearchPeriodFindsFirstDip(t *testing.T) {
	cmdf := []float64{0.8, 0.5, 0.09, 0.05, 0.04, 0.2, 0.3}

	if got := searchPeriod(cmdf, 100, 0.1); got != 4 {
		t.Fatalf("searchPeriod = %d, want 4", got)
	}
}

func TestSearchPeriodStopsOnPlateau(t *testing.T) {
	cmdf := []float64{0.5, 0.09, 0.09, 0.05, 0.3}

	// The plateau at index 1 already has non-decreasing slope.
	if got := searchPeriod(cmdf, 100, 0.1); got != 1 {
		t.Fatalf("searchPeriod = %d, want 1", got)
	}
}

func TestSearchPeriodDescendingTailPicksLastIndex(t *testing.T) {
	cmdf := []float64{0.5, 0.08, 0.06, 0.04}

	if got := searchPeriod(cmdf, 100, 0.1); got != 3 {
		t.Fatalf("searchPeriod = %d, want 3", got)
	}
}

func TestSearchPeriodNoCrossingIsAperiodic(t *testing.T) {
	cmdf := []float64{0.9, 0.8, 0.9, 1.1}

	if got := searchPeriod(cmdf, 100, 0.1); got != 0 {
		t.Fatalf("searchPeriod = %d, want 0", got)
	}
}

func TestSearchPeriodCrossingAtIndexZeroIsAperiodic(t *testing.T) {
	// Index 0 doubles as the aperiodic sentinel, so a crossing there cannot
	// be reported as a pitch. Silent frames (cmdf identically zero) rely on
	// this resolution.
	cmdf := []float64{0.05, 0.5, 0.6}

	if got := searchPeriod(cmdf, 100, 0.1); got != 0 {
		t.Fatalf("searchPeriod = %d, want 0", got)
	}
}

func TestSearchPeriodAllZeroCurve(t *testing.T) {
	cmdf := make([]float64, 32)

	if got := searchPeriod(cmdf, 100, 0.1); got != 0 {
		t.Fatalf("searchPeriod = %d, want 0", got)
	}
}

func TestSearchPeriodEmptyCurve(t *testing.T) {
	if got := searchPeriod(nil, 100, 0.1); got != 0 {
		t.Fatalf("searchPeriod = %d, want 0", got)
	}
}

func TestSearchPeriodPrefersEarlierCandidate(t *testing.T) {
	// Two qualifying dips: the shorter period wins.
	cmdf := []float64{0.5, 0.08, 0.2, 0.5, 0.02, 0.4}

	if got := searchPeriod(cmdf, 100, 0.1); got != 1 {
		t.Fatalf("searchPeriod = %d, want 1", got)
	}
}
