package statistics

import (
	"testing"

	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/controller"
	"github.com/markusressel/spiro2go/internal/inputs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type staticSnapshot controller.Snapshot

func (s staticSnapshot) Snapshot() controller.Snapshot {
	return controller.Snapshot(s)
}

func gather(t *testing.T, collector prometheus.Collector) map[string]float64 {
	registry := prometheus.NewRegistry()
	err := registry.Register(collector)
	assert.NoError(t, err)

	families, err := registry.Gather()
	assert.NoError(t, err)

	result := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() != nil {
				result[family.GetName()] = metric.GetCounter().GetValue()
			} else {
				result[family.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}
	return result
}

func TestControllerCollector(t *testing.T) {
	// GIVEN
	collector := NewControllerCollector("spiro", staticSnapshot{
		Mode:     controller.ModeAuto,
		Duty:     128,
		RngState: 0x7333,
		Legs:     3,
	})

	// WHEN
	result := gather(t, collector)

	// THEN
	assert.Len(t, result, 9)
	assert.Equal(t, 1.0, result["spiro2go_controller_auto_mode"])
	assert.Equal(t, 128.0, result["spiro2go_controller_duty"])
	assert.Equal(t, float64(0x7333), result["spiro2go_controller_rng_state"])
	assert.Equal(t, 3.0, result["spiro2go_controller_legs_total"])
}

func TestControllerCollector_Manual(t *testing.T) {
	// GIVEN
	collector := NewControllerCollector("spiro", staticSnapshot{
		Mode: controller.ModeManual,
	})

	// WHEN
	result := gather(t, collector)

	// THEN
	assert.Equal(t, 0.0, result["spiro2go_controller_auto_mode"])
}

func TestInputCollector(t *testing.T) {
	// GIVEN
	input := &inputs.StaticInput{
		Config: configuration.InputConfig{
			ID:     "knob",
			Static: &configuration.StaticInputConfig{Value: 42},
		},
	}
	collector := NewInputCollector([]inputs.Input{input})

	// WHEN
	result := gather(t, collector)

	// THEN
	assert.Equal(t, map[string]float64{"spiro2go_input_value": 42}, result)
}
