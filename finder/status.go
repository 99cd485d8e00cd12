package finder

// Status is the result of a run and doubles as the process exit code.
type Status int

const (
	// StatusSuccess means a match was found, or the only match is in the
	// current directory and a note was printed.
	StatusSuccess Status = 0
	// StatusNotFound means nothing matched.
	StatusNotFound Status = 1
	// StatusError means the run failed.
	StatusError Status = 2
)

// ExitCode returns the process exit code for s.
func (s Status) ExitCode() int {
	return int(s)
}

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotFound:
		return "not found"
	default:
		return "error"
	}
}
