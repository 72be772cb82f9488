package domain

// FailureDetail is a condensed view of a failed case's diagnostics.
type FailureDetail struct {
	Plugin  string
	Message string   // most relevant diagnostic line from the captured output
	Snippet []string // tail of the captured output, trimmed
}
