package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEnergyModel(t *testing.T) {
	model := DefaultEnergyModel()

	assert.True(t, model.Covers(8, 18))
	assert.Equal(t, TierPeak, model.TierAt(9))
	assert.Equal(t, TierLow, model.TierAt(13))
}

func TestEnergyModel_TierAt_DefaultsToRecovery(t *testing.T) {
	model := DefaultEnergyModel()

	assert.Equal(t, TierRecovery, model.TierAt(3))
	assert.Equal(t, TierRecovery, model.TierAt(22))
}

func TestNewEnergyModel_Validation(t *testing.T) {
	tests := []struct {
		name     string
		patterns []EnergyPattern
		wantErr  bool
	}{
		{
			name:     "valid",
			patterns: []EnergyPattern{{Hour: 9, Tier: TierPeak}, {Hour: 10, Tier: TierHigh}},
		},
		{
			name:     "hour out of range",
			patterns: []EnergyPattern{{Hour: 24, Tier: TierPeak}},
			wantErr:  true,
		},
		{
			name:     "negative hour",
			patterns: []EnergyPattern{{Hour: -1, Tier: TierLow}},
			wantErr:  true,
		},
		{
			name:     "invalid tier",
			patterns: []EnergyPattern{{Hour: 9, Tier: EnergyTier("max")}},
			wantErr:  true,
		},
		{
			name:     "duplicate hour",
			patterns: []EnergyPattern{{Hour: 9, Tier: TierPeak}, {Hour: 9, Tier: TierLow}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := NewEnergyModel(tt.patterns)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, model)
		})
	}
}

func TestEnergyModel_Covers(t *testing.T) {
	model, err := NewEnergyModel([]EnergyPattern{
		{Hour: 9, Tier: TierPeak},
		{Hour: 10, Tier: TierHigh},
		{Hour: 12, Tier: TierMedium},
	})
	require.NoError(t, err)

	assert.True(t, model.Covers(9, 10))
	assert.False(t, model.Covers(9, 12), "hour 11 missing")
}

func TestEnergyModel_PatternAt(t *testing.T) {
	model := DefaultEnergyModel()

	p, ok := model.PatternAt(9)
	require.True(t, ok)
	assert.Equal(t, TierPeak, p.Tier)
	assert.Contains(t, p.Tags, "deep-work")

	_, ok = model.PatternAt(5)
	assert.False(t, ok)
}
