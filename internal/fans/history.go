package fans

import (
	"github.com/asecurityteam/rolling"
	"github.com/markusressel/ecfan/internal/util"
	"golang.org/x/exp/slices"
)

// channelHistory keeps the bounded sample history and a moving average of one channel
type channelHistory struct {
	values  []int
	avg     *rolling.PointPolicy
	avgSize int
	sampled bool
}

func newChannelHistory(avgWindowSize int) *channelHistory {
	return &channelHistory{
		avg:     util.CreateRollingWindow(avgWindowSize),
		avgSize: avgWindowSize,
	}
}

// append adds value and evicts the oldest entries exceeding capacity
func (h *channelHistory) append(value int, capacity int) {
	h.values = append(h.values, value)
	if len(h.values) > capacity {
		trimmed := make([]int, capacity)
		copy(trimmed, h.values[len(h.values)-capacity:])
		h.values = trimmed
	}

	if !h.sampled {
		// seed the whole window, otherwise the empty buckets drag the average down
		for i := 0; i < h.avgSize; i++ {
			h.avg.Append(float64(value))
		}
		h.sampled = true
	} else {
		h.avg.Append(float64(value))
	}
}

// restore replaces the history with the last capacity entries of values
func (h *channelHistory) restore(values []int, capacity int) {
	h.values = nil
	h.sampled = false
	h.avg = util.CreateRollingWindow(h.avgSize)
	for _, value := range values {
		h.append(value, capacity)
	}
}

// resize replaces the moving average window and reseeds it from the kept values
func (h *channelHistory) resize(avgWindowSize int, capacity int) {
	h.avgSize = avgWindowSize
	h.restore(h.values, capacity)
}

func (h *channelHistory) get() []int {
	return slices.Clone(h.values)
}

func (h *channelHistory) average() float64 {
	return util.GetWindowAvg(h.avg)
}
