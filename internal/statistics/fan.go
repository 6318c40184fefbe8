package statistics

import (
	"strconv"

	"github.com/markusressel/ecfan/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const fanSubsystem = "fan"

// StateProvider provides the last sampled state of all fans
type StateProvider interface {
	State() []controller.FanState
}

type FanCollector struct {
	provider StateProvider

	temperature    *prometheus.Desc
	temperatureAvg *prometheus.Desc
	speed          *prometheus.Desc
	speedAvg       *prometheus.Desc
	mode           *prometheus.Desc
}

func NewFanCollector(provider StateProvider) *FanCollector {
	return &FanCollector{
		provider: provider,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "temperature"),
			"Current raw value of the temperature register of the fan",
			[]string{"id"}, nil,
		),
		temperatureAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "temperature_avg"),
			"Moving average of the temperature register of the fan",
			[]string{"id"}, nil,
		),
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "speed"),
			"Current raw value of a speed register of the fan",
			[]string{"id", "channel"}, nil,
		),
		speedAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "speed_avg"),
			"Moving average of a speed register of the fan",
			[]string{"id", "channel"}, nil,
		),
		mode: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "mode"),
			"Current control mode of the fan, 1 for the active mode",
			[]string{"id", "mode"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
	ch <- collector.temperatureAvg
	ch <- collector.speed
	ch <- collector.speedAvg
	ch <- collector.mode
}

// Collect implements required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	for _, state := range collector.provider.State() {
		fanId := state.Name
		ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, float64(state.Temperature.Value), fanId)
		ch <- prometheus.MustNewConstMetric(collector.temperatureAvg, prometheus.GaugeValue, state.Temperature.Avg, fanId)
		for i, speed := range state.Speeds {
			channel := strconv.Itoa(i + 1)
			ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, float64(speed.Value), fanId, channel)
			ch <- prometheus.MustNewConstMetric(collector.speedAvg, prometheus.GaugeValue, speed.Avg, fanId, channel)
		}
		ch <- prometheus.MustNewConstMetric(collector.mode, prometheus.GaugeValue, 1, fanId, state.Mode)
	}
}
