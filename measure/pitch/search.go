package pitch

// searchPeriod picks the Yin "first dip" of one frame's normalized difference
// curve: the first index at or after the first threshold crossing where the
// curve stops decreasing. Earlier candidates always win, matching the Yin
// bias toward the shortest periodic lag.
//
// The return value is an index into cmdf, or 0 when the frame is aperiodic.
func searchPeriod(cmdf []float64, tauMax int, threshold float64) int {
	firstBelow := 0

	for i, v := range cmdf {
		if v < threshold {
			firstBelow = i
			break
		}
	}

	// No crossing means no periodicity; a crossing at index 0 is
	// indistinguishable from that in the sentinel encoding (index 0 already
	// means aperiodic) and resolves the same way. Silent frames, whose curve
	// is identically zero, land here.
	if firstBelow == 0 {
		firstBelow = tauMax
	}

	for i := firstBelow; i < len(cmdf); i++ {
		if i == len(cmdf)-1 || cmdf[i+1]-cmdf[i] >= 0 {
			return i
		}
	}

	return 0
}
