package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "ecfan"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}
