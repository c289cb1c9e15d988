package domain

import "time"

// RecordCheck is the round-trip outcome for a single input record.
type RecordCheck struct {
	Index   int    `json:"index"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// RoundTripReport collects the round-trip checks run over one input file.
type RoundTripReport struct {
	Entity    string        `json:"entity"`
	Direction Direction     `json:"direction"`
	Source    string        `json:"source"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Checks    []RecordCheck `json:"checks"`
}

func (r RoundTripReport) Failures() int {
	n := 0
	for _, c := range r.Checks {
		if !c.Passed {
			n++
		}
	}
	return n
}

// WorkspaceSpec describes where `dvmm init` scaffolds a project.
type WorkspaceSpec struct {
	Root string
}
