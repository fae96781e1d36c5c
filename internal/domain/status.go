package domain

import "time"

// Status is the derived state of a repair job.
type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// DeriveStatus returns the status of a job given its optional end date.
//
// The comparison is by calendar day: endDate is taken by its own y/m/d,
// now by its y/m/d in whatever location the caller passed it in. A job is
// Completed only when its end day is strictly before today; a job ending
// today or later is still InProgress. A nil endDate is always InProgress.
func DeriveStatus(endDate *time.Time, now time.Time) Status {
	if endDate == nil {
		return StatusInProgress
	}
	if truncateToDay(*endDate).Before(truncateToDay(now)) {
		return StatusCompleted
	}
	return StatusInProgress
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
