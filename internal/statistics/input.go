package statistics

import (
	"github.com/markusressel/spiro2go/internal/inputs"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemInput = "input"

type InputCollector struct {
	inputs []inputs.Input
	value  *prometheus.Desc
}

func NewInputCollector(inputs []inputs.Input) *InputCollector {
	return &InputCollector{
		inputs: inputs,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemInput, "value"),
			"Current 8-bit sample of the input",
			[]string{"id"}, nil,
		),
	}
}

func (collector *InputCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
}

// Collect implements required collect function for all prometheus collectors
func (collector *InputCollector) Collect(ch chan<- prometheus.Metric) {
	for _, input := range collector.inputs {
		value, err := input.Read()
		if err != nil {
			continue
		}
		ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, float64(value), input.GetId())
	}
}
