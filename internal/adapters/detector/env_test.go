package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vcbuild/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		override string
		auto     detector.OutputMode
		want     detector.OutputMode
	}{
		{override: "tui", auto: detector.ModeLinear, want: detector.ModeTUI},
		{override: "linear", auto: detector.ModeTUI, want: detector.ModeLinear},
		{override: "ci", auto: detector.ModeTUI, want: detector.ModeLinear},
		{override: "auto", auto: detector.ModeTUI, want: detector.ModeTUI},
		{override: "", auto: detector.ModeLinear, want: detector.ModeLinear},
		{override: "fancy", auto: detector.ModeTUI, want: detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.override, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.auto, tt.override))
		})
	}
}
