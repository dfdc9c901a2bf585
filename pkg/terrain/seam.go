package terrain

// blendForward forces heights[0] to exactly target and eases the following
// samples back toward raw noise. The blend weight at sample i is
// strength * (1 - i/window), decaying to zero at the window edge. A window
// of 1 or less pins only the boundary sample.
func blendForward(heights []float64, target float64, window int, strength float64) {
	if len(heights) == 0 {
		return
	}
	heights[0] = target
	for i := 1; i < window && i < len(heights); i++ {
		w := strength * (1 - float64(i)/float64(window))
		heights[i] += (target - heights[i]) * w
	}
}

// blendBackward is the mirror: the last sample is forced to target and the
// blend decays walking backward from the end.
func blendBackward(heights []float64, target float64, window int, strength float64) {
	n := len(heights)
	if n == 0 {
		return
	}
	heights[n-1] = target
	for i := 1; i < window && i < n; i++ {
		w := strength * (1 - float64(i)/float64(window))
		heights[n-1-i] += (target - heights[n-1-i]) * w
	}
}
