package parser

import (
	"math"
	"testing"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"123", 123},
		{"  45.5 ", 45.5},
		{"-100", -100},
		{"+7", 7},
		{".5", 0.5},
		{"1e3", 1000},
		{"", 0},
		{"   ", 0},
		{"0x1A", 26},
		{"0b101", 5},
		{"0o17", 15},
		{"017", 17},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		result := ToNumber(tt.input)
		if result != tt.expected {
			t.Errorf("ToNumber(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestToNumberNaN(t *testing.T) {
	inputs := []string{"hello", "12abc", "1,234", "inf", "infinity", "NaN", "0x", "0xZZ", "1_000", "0x1p4"}

	for _, input := range inputs {
		if result := ToNumber(input); !math.IsNaN(result) {
			t.Errorf("ToNumber(%q) = %v, expected NaN", input, result)
		}
	}
}
