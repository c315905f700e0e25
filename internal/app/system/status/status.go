// Package status defines the closed set of report statuses.
//
// A report starts in UnderReview and is moved by staff between any of the
// three statuses; there is no forward-only constraint. Any other string is
// rejected before the report is even looked up.
package status

const (
	UnderReview = "under_review"
	InProgress  = "in_progress"
	Resolved    = "resolved"
)

// IsValid reports whether s is one of the three accepted statuses.
func IsValid(s string) bool {
	switch s {
	case UnderReview, InProgress, Resolved:
		return true
	default:
		return false
	}
}
