package statistics

import (
	"github.com/markusressel/spiro2go/internal/outputs"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemOutput = "output"

type OutputCollector struct {
	outputs []outputs.Output
	duty    *prometheus.Desc
}

func NewOutputCollector(outputs []outputs.Output) *OutputCollector {
	return &OutputCollector{
		outputs: outputs,
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemOutput, "duty"),
			"Duty cycle reported by the output",
			[]string{"id"}, nil,
		),
	}
}

func (collector *OutputCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.duty
}

// Collect implements required collect function for all prometheus collectors
func (collector *OutputCollector) Collect(ch chan<- prometheus.Metric) {
	for _, output := range collector.outputs {
		value, err := output.GetDuty()
		if err != nil {
			continue
		}
		ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, float64(value), output.GetId())
	}
}
