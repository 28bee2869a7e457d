package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "spiro2go"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}
