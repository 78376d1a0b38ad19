package chroma_test

import (
	"testing"

	"github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench/chroma"
	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	detector := chroma.NewDetector()

	tests := []struct {
		path string
		want string
	}{
		{"strategy.py", "Python"},
		{"strategies/sma_crossover.py", "Python"},
		{"backtest.go", "Go"},
		{"config.yaml", "YAML"},
		{"notes.unknownext", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, detector.DetectFromPath(tt.path), "path=%s", tt.path)
	}
}
