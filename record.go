package tifbench

import "time"

// RunRecord is a persisted evaluation run.
type RunRecord struct {
	Request     EvaluationRequest `json:"request"`
	Results     []JudgeResult     `json:"results"`
	Verdicts    []Verdict         `json:"verdicts"`
	Report      ConsensusReport   `json:"report"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
}

// RunStore persists and retrieves evaluation runs.
type RunStore interface {
	Append(path string, rec RunRecord) error
	Load(path string) ([]RunRecord, error)
}
