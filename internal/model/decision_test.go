package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecisionFor(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       string
	}{
		{name: "well below threshold", confidence: 0.42, want: DecisionManualReview},
		{name: "just below threshold", confidence: 0.6999, want: DecisionManualReview},
		{name: "exactly at threshold", confidence: 0.7, want: DecisionAutoUpdate},
		{name: "above threshold", confidence: 0.85, want: DecisionAutoUpdate},
		{name: "zero", confidence: 0, want: DecisionManualReview},
		{name: "full confidence", confidence: 1, want: DecisionAutoUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecisionFor(tt.confidence))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Auto-Updated", StatusLabel(AutoUpdateThreshold))
	assert.Equal(t, "Manual Review", StatusLabel(0.69))
	assert.Equal(t, "Auto-Updated", StatusLabel(0.99))
}
