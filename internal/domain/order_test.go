package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaid(t *testing.T) {
	tests := []struct {
		name          string
		value         any
		expected      bool
		expectedError bool
	}{
		{name: "bool true", value: true, expected: true},
		{name: "bool false", value: false, expected: false},
		{name: "string 1", value: "1", expected: true},
		{name: "string 0", value: "0", expected: false},
		{name: "string true", value: "true", expected: true},
		{name: "string TRUE", value: "TRUE", expected: true},
		{name: "string False", value: "False", expected: false},
		{name: "string maybe", value: "maybe", expectedError: true},
		{name: "number", value: float64(1), expectedError: true},
		{name: "nil", value: nil, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, err := ParsePaid(tt.value)
			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidPaidValue)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, paid)
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "shipped", NormalizeStatus("  SHIPPED "))
	assert.Equal(t, "pending", NormalizeStatus("pending"))
	assert.Equal(t, "", NormalizeStatus("   "))
}
