package statistics

import (
	"github.com/markusressel/spiro2go/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type SnapshotSource interface {
	Snapshot() controller.Snapshot
}

type ControllerCollector struct {
	id     string
	source SnapshotSource

	mode             *prometheus.Desc
	duty             *prometheus.Desc
	rngState         *prometheus.Desc
	legs             *prometheus.Desc
	dutyChanges      *prometheus.Desc
	waitIterations   *prometheus.Desc
	manualIterations *prometheus.Desc
	lastLegDuration  *prometheus.Desc
	avgLegDuration   *prometheus.Desc
}

func NewControllerCollector(id string, source SnapshotSource) *ControllerCollector {
	return &ControllerCollector{
		id:     id,
		source: source,
		mode: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "auto_mode"),
			"1 while the controller is in auto-ramp mode, 0 in manual mode",
			[]string{"id"}, nil,
		),
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "duty"),
			"Duty cycle currently applied to the output",
			[]string{"id"}, nil,
		),
		rngState: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "rng_state"),
			"Current state of the pseudo-random target generator",
			[]string{"id"}, nil,
		),
		legs: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "legs_total"),
			"Number of completed ramp legs",
			[]string{"id"}, nil,
		),
		dutyChanges: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "duty_changes_total"),
			"Number of duty cycle changes",
			[]string{"id"}, nil,
		),
		waitIterations: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "wait_iterations_total"),
			"Number of countdown iterations spent waiting between ramp steps",
			[]string{"id"}, nil,
		),
		manualIterations: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "manual_iterations_total"),
			"Number of manual mode iterations",
			[]string{"id"}, nil,
		),
		lastLegDuration: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "last_leg_duration_seconds"),
			"Duration of the most recent ramp leg",
			[]string{"id"}, nil,
		),
		avgLegDuration: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "avg_leg_duration_seconds"),
			"Average duration of the recent ramp legs",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.mode
	ch <- collector.duty
	ch <- collector.rngState
	ch <- collector.legs
	ch <- collector.dutyChanges
	ch <- collector.waitIterations
	ch <- collector.manualIterations
	ch <- collector.lastLegDuration
	ch <- collector.avgLegDuration
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	s := collector.source.Snapshot()
	id := collector.id

	auto := 0.0
	if s.Mode == controller.ModeAuto {
		auto = 1
	}

	ch <- prometheus.MustNewConstMetric(collector.mode, prometheus.GaugeValue, auto, id)
	ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, float64(s.Duty), id)
	ch <- prometheus.MustNewConstMetric(collector.rngState, prometheus.GaugeValue, float64(s.RngState), id)
	ch <- prometheus.MustNewConstMetric(collector.legs, prometheus.CounterValue, float64(s.Legs), id)
	ch <- prometheus.MustNewConstMetric(collector.dutyChanges, prometheus.CounterValue, float64(s.DutyChanges), id)
	ch <- prometheus.MustNewConstMetric(collector.waitIterations, prometheus.CounterValue, float64(s.WaitIterations), id)
	ch <- prometheus.MustNewConstMetric(collector.manualIterations, prometheus.CounterValue, float64(s.ManualIterations), id)
	ch <- prometheus.MustNewConstMetric(collector.lastLegDuration, prometheus.GaugeValue, s.LastLegDuration.Seconds(), id)
	ch <- prometheus.MustNewConstMetric(collector.avgLegDuration, prometheus.GaugeValue, s.AvgLegDuration.Seconds(), id)
}
