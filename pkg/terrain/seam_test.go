package terrain

import (
	"math"
	"testing"
)

func flatHeights(n int, v float64) []float64 {
	h := make([]float64, n)
	for i := range h {
		h[i] = v
	}
	return h
}

func TestBlendForwardPinsBoundary(t *testing.T) {
	h := flatHeights(10, 1.0)
	blendForward(h, 5.0, 4, 1.0)

	if h[0] != 5.0 {
		t.Fatalf("h[0] = %f, want exactly 5.0", h[0])
	}
	// Influence decays over the window and vanishes past it.
	for i := 1; i < 4; i++ {
		if h[i] <= 1.0 || h[i] >= 5.0 {
			t.Errorf("h[%d] = %f, want strictly between raw 1.0 and target 5.0", i, h[i])
		}
		if h[i] >= h[i-1] {
			t.Errorf("h[%d] = %f, blend influence should decay (h[%d] = %f)", i, h[i], i-1, h[i-1])
		}
	}
	for i := 4; i < 10; i++ {
		if h[i] != 1.0 {
			t.Errorf("h[%d] = %f, want untouched raw 1.0", i, h[i])
		}
	}
}

func TestBlendForwardWeights(t *testing.T) {
	h := flatHeights(8, 0.0)
	blendForward(h, 4.0, 4, 0.5)

	// weight(i) = 0.5 * (1 - i/4); blended = raw + (target-raw)*weight.
	want := []float64{4.0, 4.0 * 0.5 * 0.75, 4.0 * 0.5 * 0.5, 4.0 * 0.5 * 0.25, 0, 0, 0, 0}
	for i, w := range want {
		if math.Abs(h[i]-w) > 1e-12 {
			t.Errorf("h[%d] = %f, want %f", i, h[i], w)
		}
	}
}

func TestBlendBackwardMirrors(t *testing.T) {
	fwd := flatHeights(12, 2.0)
	bwd := flatHeights(12, 2.0)
	blendForward(fwd, 7.0, 5, 0.8)
	blendBackward(bwd, 7.0, 5, 0.8)

	for i := range fwd {
		j := len(bwd) - 1 - i
		if math.Abs(fwd[i]-bwd[j]) > 1e-12 {
			t.Fatalf("backward blend is not the mirror of forward: fwd[%d]=%f bwd[%d]=%f", i, fwd[i], j, bwd[j])
		}
	}
}

func TestBlendWindowOfOnePinsOnlyBoundary(t *testing.T) {
	h := flatHeights(6, 3.0)
	blendForward(h, -1.0, 1, 1.0)

	if h[0] != -1.0 {
		t.Fatalf("h[0] = %f, want -1.0", h[0])
	}
	for i := 1; i < 6; i++ {
		if h[i] != 3.0 {
			t.Errorf("h[%d] = %f, want untouched 3.0", i, h[i])
		}
	}
}

func TestBlendWindowLargerThanBuffer(t *testing.T) {
	h := flatHeights(3, 1.0)
	blendForward(h, 2.0, 10, 1.0)

	if h[0] != 2.0 {
		t.Fatalf("h[0] = %f, want 2.0", h[0])
	}
	// All remaining samples are inside the window and pulled toward target.
	for i := 1; i < 3; i++ {
		if h[i] <= 1.0 || h[i] >= 2.0 {
			t.Errorf("h[%d] = %f, want between 1.0 and 2.0", i, h[i])
		}
	}
}

func TestBlendStrengthAboveOneOvershoots(t *testing.T) {
	// Strength is deliberately unclamped; weight > 1 pushes a sample past
	// the target.
	h := flatHeights(8, 0.0)
	blendForward(h, 4.0, 4, 2.0)

	// weight(1) = 2 * (1 - 1/4) = 1.5 → h[1] = 0 + 4*1.5 = 6, past target 4.
	if h[1] <= 4.0 {
		t.Errorf("h[1] = %f, want overshoot past target 4.0", h[1])
	}
}
