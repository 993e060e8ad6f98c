package app

// DensityStep is the percentage change applied by one density key press.
const DensityStep = 5

// StepDensity moves pct by delta percentage points, clamped to [0, 100].
func StepDensity(pct, delta int) int {
	pct += delta
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DensityPercent converts a density in [0, 1] to the nearest whole percent.
func DensityPercent(density float64) int {
	return StepDensity(int(density*100+0.5), 0)
}

// DensityFraction converts a percentage to a density in [0, 1].
func DensityFraction(pct int) float64 {
	return float64(StepDensity(pct, 0)) / 100
}
