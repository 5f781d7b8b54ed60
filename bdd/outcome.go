package bdd

// Outcome is the state of an Example.
type Outcome int

const (
	// NotRun means the example has not been exercised yet.
	NotRun Outcome = iota
	Passed
	Failed
	Pending
)

func (o Outcome) String() string {
	switch o {
	case NotRun:
		return "not run"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Pending:
		return "pending"
	default:
		return "unknown"
	}
}
