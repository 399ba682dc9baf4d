package thumbnail

// Status tracks a generation attempt from creation to its outcome.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Generating reports whether the attempt has not reached an outcome yet.
func (s Status) Generating() bool {
	return s == StatusPending
}
