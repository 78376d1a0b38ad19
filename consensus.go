package tifbench

// Consensus classifies the overall agreement across a run's verdicts.
type Consensus int

// Consensus outcomes.
const (
	ConsensusMixed Consensus = iota
	ConsensusUnanimousApprove
	ConsensusUnanimousReject
)

// String returns the display name of the consensus outcome.
func (c Consensus) String() string {
	switch c {
	case ConsensusUnanimousApprove:
		return "UnanimousApprove"
	case ConsensusUnanimousReject:
		return "UnanimousReject"
	default:
		return "Mixed"
	}
}

// ConsensusReport aggregates the verdicts of a single run.
type ConsensusReport struct {
	Approves int       `json:"approves"`
	Rejects  int       `json:"rejects"`
	Unknowns int       `json:"unknowns"`
	Outcome  Consensus `json:"outcome"`
}

// Total returns the number of verdicts behind the report.
func (r ConsensusReport) Total() int {
	return r.Approves + r.Rejects + r.Unknowns
}

// Aggregate combines per-judge verdicts into a consensus report. A run
// is unanimous only when every verdict agrees; any Unknown breaks
// unanimity. An all-Unknown run, like an empty one, reports
// ConsensusMixed.
func Aggregate(verdicts []Verdict) ConsensusReport {
	var rep ConsensusReport
	for _, v := range verdicts {
		switch v {
		case VerdictApprove:
			rep.Approves++
		case VerdictReject:
			rep.Rejects++
		default:
			rep.Unknowns++
		}
	}

	switch {
	case len(verdicts) > 0 && rep.Approves == len(verdicts):
		rep.Outcome = ConsensusUnanimousApprove
	case len(verdicts) > 0 && rep.Rejects == len(verdicts):
		rep.Outcome = ConsensusUnanimousReject
	default:
		rep.Outcome = ConsensusMixed
	}
	return rep
}
