package controller

import (
	"math"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/spiro2go/internal/duty"
	"github.com/markusressel/spiro2go/internal/util"
)

const legDurationWindowSize = 16

// Snapshot is a consistent copy of the controller statistics
type Snapshot struct {
	Mode     Mode   `json:"mode"`
	Duty     uint8  `json:"duty"`
	RngState uint16 `json:"rngState"`

	Legs             uint64 `json:"legs"`
	DutyChanges      uint64 `json:"dutyChanges"`
	Waits            uint64 `json:"waits"`
	WaitIterations   uint64 `json:"waitIterations"`
	ManualIterations uint64 `json:"manualIterations"`

	LastLegDuration time.Duration `json:"lastLegDuration"`
	MaxLegDuration  time.Duration `json:"maxLegDuration"`
	AvgLegDuration  time.Duration `json:"avgLegDuration"`
}

// Statistics are updated by the controller and read concurrently by the
// metrics exporter and the api. It observes ramp legs as a ramp.Recorder.
type Statistics struct {
	mu       sync.Mutex
	snapshot Snapshot

	now          func() time.Time
	legStart     time.Time
	legDurations *rolling.PointPolicy
	legSamples   int
}

func NewStatistics() *Statistics {
	return &Statistics{
		now:          time.Now,
		legDurations: util.CreateRollingWindow(legDurationWindowSize),
	}
}

func (s *Statistics) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.snapshot
	if s.legSamples > 0 {
		result.MaxLegDuration = time.Duration(util.GetWindowMax(s.legDurations))
		// the window is pre-filled with zeros until it has seen enough legs
		samples := int(math.Min(float64(s.legSamples), legDurationWindowSize))
		result.AvgLegDuration = time.Duration(util.GetWindowSum(s.legDurations) / float64(samples))
	}
	return result
}

func (s *Statistics) OnLegStart(from duty.DutyCycle, to duty.DutyCycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Mode = ModeAuto
	s.legStart = s.now()
}

func (s *Statistics) OnDuty(value duty.DutyCycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Duty = uint8(value)
	s.snapshot.DutyChanges++
}

func (s *Statistics) OnWait(iterations int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Waits++
	s.snapshot.WaitIterations += uint64(iterations)
}

func (s *Statistics) OnLegEnd(final duty.DutyCycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.now().Sub(s.legStart)
	s.snapshot.Legs++
	s.snapshot.Duty = uint8(final)
	s.snapshot.LastLegDuration = elapsed
	s.legDurations.Append(float64(elapsed))
	s.legSamples++
}

func (s *Statistics) onManual(value duty.DutyCycle, rngState uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Mode = ModeManual
	if s.snapshot.Duty != uint8(value) {
		s.snapshot.DutyChanges++
	}
	s.snapshot.Duty = uint8(value)
	s.snapshot.RngState = rngState
	s.snapshot.ManualIterations++
}

func (s *Statistics) setDuty(value duty.DutyCycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Duty = uint8(value)
}

func (s *Statistics) setRngState(state uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.RngState = state
}
