package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceString(t *testing.T) {
	tests := []struct {
		name          string
		cliValue      string
		resolvedValue string
		expected      string
	}{
		{"flag wins", "staging", "dev", "staging"},
		{"config used when flag empty", "", "dev", "dev"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CoalesceString(tt.cliValue, tt.resolvedValue)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestCoalesceBool(t *testing.T) {
	tests := []struct {
		name          string
		cliValue      bool
		resolvedValue bool
		condition     bool // whether CLI flag was explicitly set
		expected      bool
	}{
		{"flag explicitly true", true, false, true, true},
		{"flag explicitly false overrides config", false, true, true, false},
		{"flag unset uses config true", false, true, false, true},
		{"flag unset uses config false", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CoalesceBool(tt.cliValue, tt.resolvedValue, tt.condition)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestCoalesceStringSlice(t *testing.T) {
	assert.Equal(t, []string{"*.yaml"}, CoalesceStringSlice([]string{"*.yaml"}, []string{"*.yml"}))
	assert.Equal(t, []string{"*.yml"}, CoalesceStringSlice(nil, []string{"*.yml"}))
	assert.Nil(t, CoalesceStringSlice(nil, nil))
}
