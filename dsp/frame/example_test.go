package frame_test

import (
	"fmt"

	"github.com/cwbudde/algo-pitch/dsp/frame"
)

func ExampleSlice() {
	signal := []float64{0, 1, 2, 3, 4, 5}

	frames, _ := frame.Slice(signal, 4, 2)
	for _, f := range frames {
		fmt.Println(f)
	}
	// Output:
	// [0 1 2 3]
	// [2 3 4 5]
}
