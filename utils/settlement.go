package utils

import (
	"math/rand"
	"time"
)

// Success probabilities for the stochastic settlement draw.
const (
	upiSuccessRate  = 0.90
	cardSuccessRate = 0.95
)

// SettlementConfig controls the simulator. When TestMode is set, FixedDelay
// and FixedSuccess fully determine the result, giving reproducible scenarios.
type SettlementConfig struct {
	TestMode     bool
	FixedDelay   time.Duration
	FixedSuccess bool
}

// DelayRange is the half-open interval the stochastic delay is drawn from.
// Each entry point carries its own range.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// SettlementSimulator stands in for the bank: it decides how long a payment
// stays in processing and whether it settles. The random source is injected
// so tests can stub the draws.
type SettlementSimulator struct {
	cfg       SettlementConfig
	randFloat func() float64
}

// NewSettlementSimulator builds a simulator backed by the global random
// source, which is safe for concurrent use.
func NewSettlementSimulator(cfg SettlementConfig) *SettlementSimulator {
	return &SettlementSimulator{cfg: cfg, randFloat: rand.Float64}
}

// NewSettlementSimulatorWithSource builds a simulator with a custom draw
// function, for tests.
func NewSettlementSimulatorWithSource(cfg SettlementConfig, randFloat func() float64) *SettlementSimulator {
	return &SettlementSimulator{cfg: cfg, randFloat: randFloat}
}

// Simulate returns the processing delay and the settlement outcome for a
// payment method. In test mode both come straight from the config; otherwise
// the delay is uniform over the given range and the outcome is a Bernoulli
// draw (90% success for UPI, 95% for card).
func (s *SettlementSimulator) Simulate(method string, delay DelayRange) (time.Duration, bool) {
	if s.cfg.TestMode {
		return s.cfg.FixedDelay, s.cfg.FixedSuccess
	}

	d := delay.Min + time.Duration(s.randFloat()*float64(delay.Max-delay.Min))

	rate := cardSuccessRate
	if method == "upi" {
		rate = upiSuccessRate
	}
	return d, s.randFloat() < rate
}
