package music

// Outcome is the result of a rename cycle that did not fail. The zero value
// is not a valid outcome; it accompanies errors.
type Outcome int

const (
	noOutcome Outcome = iota
	Renamed
	SkippedUnchanged
	SkippedCollision
)

func (o Outcome) String() string {
	switch o {
	case noOutcome:
		return "none"
	case Renamed:
		return "renamed"
	case SkippedUnchanged:
		return "unchanged"
	case SkippedCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// RunSummary holds the tallies of one batch run.
type RunSummary struct {
	Success int
	Skipped int
	Errors  int
}

// Total returns the number of files that reached the processor.
func (s RunSummary) Total() int {
	return s.Success + s.Skipped + s.Errors
}
