package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createStatistics() (*Statistics, *time.Time) {
	stats := NewStatistics()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stats.now = func() time.Time {
		return now
	}
	return stats, &now
}

func TestStatistics_Leg(t *testing.T) {
	// GIVEN
	stats, now := createStatistics()

	// WHEN
	stats.OnLegStart(10, 12)
	stats.OnDuty(11)
	stats.OnWait(3)
	stats.OnDuty(12)
	stats.OnWait(4)
	*now = now.Add(2 * time.Second)
	stats.OnLegEnd(12)

	// THEN
	snapshot := stats.Snapshot()
	assert.Equal(t, ModeAuto, snapshot.Mode)
	assert.Equal(t, uint8(12), snapshot.Duty)
	assert.Equal(t, uint64(1), snapshot.Legs)
	assert.Equal(t, uint64(2), snapshot.DutyChanges)
	assert.Equal(t, uint64(2), snapshot.Waits)
	assert.Equal(t, uint64(7), snapshot.WaitIterations)
	assert.Equal(t, 2*time.Second, snapshot.LastLegDuration)
	assert.Equal(t, 2*time.Second, snapshot.MaxLegDuration)
	assert.Equal(t, 2*time.Second, snapshot.AvgLegDuration)
}

func TestStatistics_LegDurations(t *testing.T) {
	// GIVEN
	stats, now := createStatistics()

	// WHEN
	for _, d := range []time.Duration{time.Second, 3 * time.Second, 2 * time.Second} {
		stats.OnLegStart(0, 1)
		*now = now.Add(d)
		stats.OnLegEnd(1)
	}

	// THEN
	snapshot := stats.Snapshot()
	assert.Equal(t, 2*time.Second, snapshot.LastLegDuration)
	assert.Equal(t, 3*time.Second, snapshot.MaxLegDuration)
	assert.Equal(t, 2*time.Second, snapshot.AvgLegDuration)
}

func TestStatistics_Manual(t *testing.T) {
	// GIVEN
	stats, _ := createStatistics()

	// WHEN
	stats.onManual(100, 0x1234)
	stats.onManual(100, 0x1298)
	stats.onManual(101, 0x12FD)

	// THEN
	snapshot := stats.Snapshot()
	assert.Equal(t, ModeManual, snapshot.Mode)
	assert.Equal(t, uint8(101), snapshot.Duty)
	assert.Equal(t, uint16(0x12FD), snapshot.RngState)
	assert.Equal(t, uint64(3), snapshot.ManualIterations)
	assert.Equal(t, uint64(2), snapshot.DutyChanges)
	assert.Equal(t, time.Duration(0), snapshot.AvgLegDuration)
}
