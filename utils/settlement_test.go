package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testRange = DelayRange{Min: 5 * time.Second, Max: 10 * time.Second}

// stubDraws returns a draw function that replays the given values in order.
func stubDraws(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestSimulateTestModeIsFullyDeterministic(t *testing.T) {
	sim := NewSettlementSimulator(SettlementConfig{
		TestMode:     true,
		FixedDelay:   250 * time.Millisecond,
		FixedSuccess: false,
	})

	for i := 0; i < 5; i++ {
		delay, success := sim.Simulate("upi", testRange)
		assert.Equal(t, 250*time.Millisecond, delay)
		assert.False(t, success)
	}
}

func TestSimulateStochasticDelayWithinRange(t *testing.T) {
	sim := NewSettlementSimulator(SettlementConfig{})

	for i := 0; i < 200; i++ {
		delay, _ := sim.Simulate("card", testRange)
		assert.GreaterOrEqual(t, delay, testRange.Min)
		assert.Less(t, delay, testRange.Max)
	}
}

func TestSimulateStochasticDelayBounds(t *testing.T) {
	// First draw is the delay, second the outcome.
	sim := NewSettlementSimulatorWithSource(SettlementConfig{}, stubDraws(0.0, 0.0))
	delay, _ := sim.Simulate("upi", testRange)
	assert.Equal(t, testRange.Min, delay)

	sim = NewSettlementSimulatorWithSource(SettlementConfig{}, stubDraws(0.5, 0.0))
	delay, _ = sim.Simulate("upi", testRange)
	assert.Equal(t, testRange.Min+(testRange.Max-testRange.Min)/2, delay)
}

func TestSimulateOutcomeThresholdsPerMethod(t *testing.T) {
	// 0.92 sits between the UPI (0.90) and card (0.95) success rates.
	sim := NewSettlementSimulatorWithSource(SettlementConfig{}, stubDraws(0.0, 0.92))
	_, success := sim.Simulate("upi", testRange)
	assert.False(t, success, "0.92 draw should fail a UPI payment")

	sim = NewSettlementSimulatorWithSource(SettlementConfig{}, stubDraws(0.0, 0.92))
	_, success = sim.Simulate("card", testRange)
	assert.True(t, success, "0.92 draw should settle a card payment")

	sim = NewSettlementSimulatorWithSource(SettlementConfig{}, stubDraws(0.0, 0.97))
	_, success = sim.Simulate("card", testRange)
	assert.False(t, success, "0.97 draw should fail a card payment")

	sim = NewSettlementSimulatorWithSource(SettlementConfig{}, stubDraws(0.0, 0.5))
	_, success = sim.Simulate("upi", testRange)
	assert.True(t, success)
}
