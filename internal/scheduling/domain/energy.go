package domain

import (
	"fmt"
)

// EnergyTier is the qualitative focus level for an hour of the day.
type EnergyTier string

const (
	TierPeak     EnergyTier = "peak"
	TierHigh     EnergyTier = "high"
	TierMedium   EnergyTier = "medium"
	TierLow      EnergyTier = "low"
	TierRecovery EnergyTier = "recovery"
)

// IsValid checks if the tier is one of the known values.
func (t EnergyTier) IsValid() bool {
	switch t {
	case TierPeak, TierHigh, TierMedium, TierLow, TierRecovery:
		return true
	default:
		return false
	}
}

// EnergyPattern maps an hour of the day to an energy tier with
// descriptive tags.
type EnergyPattern struct {
	Hour int
	Tier EnergyTier
	Tags []string
}

// EnergyModel is a read-only table of energy patterns keyed by hour.
// Hours outside the table fall back to the lowest tier.
type EnergyModel struct {
	patterns map[int]EnergyPattern
}

// NewEnergyModel builds a model from the given patterns.
func NewEnergyModel(patterns []EnergyPattern) (*EnergyModel, error) {
	table := make(map[int]EnergyPattern, len(patterns))
	for _, p := range patterns {
		if p.Hour < 0 || p.Hour > 23 {
			return nil, fmt.Errorf("invalid hour %d in energy pattern", p.Hour)
		}
		if !p.Tier.IsValid() {
			return nil, fmt.Errorf("invalid energy tier %q for hour %d", p.Tier, p.Hour)
		}
		if _, exists := table[p.Hour]; exists {
			return nil, fmt.Errorf("duplicate energy pattern for hour %d", p.Hour)
		}
		table[p.Hour] = p
	}
	return &EnergyModel{patterns: table}, nil
}

// DefaultEnergyModel returns the built-in table covering the working
// hours 8 through 18.
func DefaultEnergyModel() *EnergyModel {
	model, err := NewEnergyModel([]EnergyPattern{
		{Hour: 8, Tier: TierHigh, Tags: []string{"warmup"}},
		{Hour: 9, Tier: TierPeak, Tags: []string{"deep-work"}},
		{Hour: 10, Tier: TierPeak, Tags: []string{"deep-work"}},
		{Hour: 11, Tier: TierHigh, Tags: []string{"deep-work"}},
		{Hour: 12, Tier: TierMedium, Tags: []string{"pre-lunch"}},
		{Hour: 13, Tier: TierLow, Tags: []string{"post-lunch-dip"}},
		{Hour: 14, Tier: TierMedium, Tags: []string{"admin"}},
		{Hour: 15, Tier: TierMedium, Tags: []string{"admin"}},
		{Hour: 16, Tier: TierHigh, Tags: []string{"second-wind"}},
		{Hour: 17, Tier: TierMedium, Tags: []string{"wrap-up"}},
		{Hour: 18, Tier: TierLow, Tags: []string{"wind-down"}},
	})
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return model
}

// TierAt returns the energy tier for an hour, defaulting to recovery for
// hours outside the table.
func (m *EnergyModel) TierAt(hour int) EnergyTier {
	if p, ok := m.patterns[hour]; ok {
		return p.Tier
	}
	return TierRecovery
}

// PatternAt returns the full pattern for an hour.
func (m *EnergyModel) PatternAt(hour int) (EnergyPattern, bool) {
	p, ok := m.patterns[hour]
	return p, ok
}

// Covers reports whether every hour in [startHour, endHour] has an
// explicit pattern. The slot finder requires its whole scan window to
// be covered.
func (m *EnergyModel) Covers(startHour, endHour int) bool {
	for h := startHour; h <= endHour; h++ {
		if _, ok := m.patterns[h]; !ok {
			return false
		}
	}
	return true
}
