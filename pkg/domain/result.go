package domain

// Result is the snapshot of a machine after a run.
// On failure it holds the partial tape at the point of failure.
type Result struct {
	Tape  []byte `json:"tape"`
	State State  `json:"state"`
	Head  int    `json:"head"`
	Steps int    `json:"steps"`
}

// TapeString returns the tape contents as a string.
func (r Result) TapeString() string {
	return string(r.Tape)
}
