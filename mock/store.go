package mock

import tifbench "github.com/SuperiorAgents/Trading-Intent-Fidelity-Benchmark-TIFBench"

// Compile-time interface verification.
var _ tifbench.RunStore = (*RunStore)(nil)

// RunStore is a mock implementation of tifbench.RunStore.
type RunStore struct {
	AppendFn func(path string, rec tifbench.RunRecord) error
	LoadFn   func(path string) ([]tifbench.RunRecord, error)
}

func (s *RunStore) Append(path string, rec tifbench.RunRecord) error {
	return s.AppendFn(path, rec)
}

func (s *RunStore) Load(path string) ([]tifbench.RunRecord, error) {
	return s.LoadFn(path)
}
