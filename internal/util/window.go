package util

import "github.com/asecurityteam/rolling"

func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}

// GetWindowAvg returns the average of all values in the window, or 0 if it is empty
func GetWindowAvg(window *rolling.PointPolicy) float64 {
	if window.Reduce(rolling.Count) <= 0 {
		return 0
	}
	return window.Reduce(rolling.Avg)
}
