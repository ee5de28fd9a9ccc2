// Package review holds the core of the pipeline: deciding which issues
// were reviewed, when, with what outcome, and which comment carries the
// feedback.
package review

// Labels that drive review classification.
const (
	LabelReadyForReview = "api-ready-for-review"
	LabelApproved       = "api-approved"
	LabelNeedsWork      = "api-needs-work"
)

func ReviewLabels() []string {
	return []string{LabelReadyForReview, LabelApproved, LabelNeedsWork}
}

// Status is the review outcome of an issue on a given date. The ordinal
// encodes precedence: when several outcomes apply to one issue, the
// highest value wins.
type Status int

const (
	StatusNeedsWork Status = iota
	StatusRejected
	StatusApproved
)

func (s Status) String() string {
	switch s {
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	default:
		return "Needs Work"
	}
}

// ResolveStatus folds the three outcome conditions into a single status
// by precedence. ok is false when none apply.
func ResolveStatus(approved, rejected, needsWork bool) (Status, bool) {
	switch {
	case approved:
		return StatusApproved, true
	case rejected:
		return StatusRejected, true
	case needsWork:
		return StatusNeedsWork, true
	default:
		return 0, false
	}
}
