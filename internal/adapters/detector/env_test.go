package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/geocache/internal/adapters/detector"
)

func TestDetectEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
	}{
		{name: "CI=true forces linear mode", ciValue: "true"},
		{name: "CI=1 forces linear mode", ciValue: "1"},
		{name: "CI=false with a regular file", ciValue: "false"},
		{name: "No CI env var with a regular file", ciValue: ""},
	}

	// A regular file is never a terminal, so every case resolves to linear.
	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(file))
		})
	}
}

func TestDetectEnvironment_NilFile(t *testing.T) {
	t.Setenv("CI", "")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(nil))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		flag     string
		expected detector.OutputMode
	}{
		{flag: "", expected: detector.ModeAuto},
		{flag: "auto", expected: detector.ModeAuto},
		{flag: "tui", expected: detector.ModeTUI},
		{flag: "TUI", expected: detector.ModeTUI},
		{flag: "linear", expected: detector.ModeLinear},
		{flag: "ci", expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := detector.ParseMode(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := detector.ParseMode("fancy")
	require.ErrorContains(t, err, detector.ErrInvalidOutputMode.Error())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		requested    detector.OutputMode
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects auto-detection (TUI)",
			autoDetected: detector.ModeTUI,
			requested:    detector.ModeAuto,
			expected:     detector.ModeTUI,
		},
		{
			name:         "auto respects auto-detection (Linear)",
			autoDetected: detector.ModeLinear,
			requested:    detector.ModeAuto,
			expected:     detector.ModeLinear,
		},
		{
			name:         "tui overrides auto-detection",
			autoDetected: detector.ModeLinear,
			requested:    detector.ModeTUI,
			expected:     detector.ModeTUI,
		},
		{
			name:         "linear overrides auto-detection",
			autoDetected: detector.ModeTUI,
			requested:    detector.ModeLinear,
			expected:     detector.ModeLinear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.requested))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
