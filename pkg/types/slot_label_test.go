package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockLabel_Minutes(t *testing.T) {
	testCases := []struct {
		name     string
		label    ClockLabel
		expected int
		wantErr  bool
	}{
		{name: "midnight", label: "12 AM", expected: 0},
		{name: "noon", label: "12 PM", expected: 720},
		{name: "morning hour", label: "9 AM", expected: 540},
		{name: "morning with minutes", label: "9:30 AM", expected: 570},
		{name: "evening", label: "9 PM", expected: 1260},
		{name: "evening with minutes", label: "11:45 PM", expected: 1425},
		{name: "lower case suffix", label: "7 pm", expected: 1140},
		{name: "no space before suffix", label: "10AM", expected: 600},
		{name: "surrounding spaces", label: "  1 PM ", expected: 780},
		{name: "empty", label: "", wantErr: true},
		{name: "24h format", label: "13:00", wantErr: true},
		{name: "hour zero", label: "0 AM", wantErr: true},
		{name: "hour thirteen", label: "13 PM", wantErr: true},
		{name: "minutes out of range", label: "9:75 AM", wantErr: true},
		{name: "garbage", label: "soon", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.label.Minutes()
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidClockLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSlotLabel_StartMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		label    SlotLabel
		expected int
		wantErr  bool
	}{
		{name: "midnight window", label: "12 AM - 2 AM", expected: 0},
		{name: "noon window", label: "12 PM - 2 PM", expected: 720},
		{name: "half past", label: "9:30 AM - 11 AM", expected: 570},
		{name: "late evening", label: "9 PM - 11 PM", expected: 1260},
		{name: "start only", label: "7 PM", expected: 1140},
		{name: "broken start", label: "late - 11 PM", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.label.StartMinutes()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSlotLabel_Validate(t *testing.T) {
	assert.NoError(t, SlotLabel("11 AM - 1 PM").Validate())
	assert.NoError(t, SlotLabel("11 PM - 1 AM").Validate())
	assert.ErrorIs(t, SlotLabel("11 AM").Validate(), ErrInvalidSlotLabel)
	assert.ErrorIs(t, SlotLabel("11 AM - ").Validate(), ErrInvalidSlotLabel)
	assert.ErrorIs(t, SlotLabel("11 AM - 25 PM").Validate(), ErrInvalidSlotLabel)
}
