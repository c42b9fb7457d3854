package utils

import "time"

const (
	// LoanPeriodDays is the standard loan period; renewals extend the due
	// date by the same amount.
	LoanPeriodDays = 14

	// LateFeePerDayCents is the penalty per whole day a loan is returned
	// after its due date ($0.50/day).
	LateFeePerDayCents int32 = 50

	// DaysPerQueuePosition is the waiting-time weight of one reservation
	// ahead in the queue.
	DaysPerQueuePosition = 7
)

// WholeDaysBetween returns the number of whole days from a to b, fractional
// days truncated toward zero. Negative when b precedes a.
func WholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// LateFeeCents computes the fee owed for returning at returnDate against
// dueDate. Returns 0 unless the return is strictly after the due date.
func LateFeeCents(dueDate, returnDate time.Time) int32 {
	if !returnDate.After(dueDate) {
		return 0
	}
	daysLate := WholeDaysBetween(dueDate, returnDate)
	if daysLate < 0 {
		daysLate = 0
	}
	return int32(daysLate) * LateFeePerDayCents
}

// QueueEstimate is the linear heuristic used when a reservation is placed:
// one week of waiting per queue position, ignoring actual loan due dates.
func QueueEstimate(now time.Time, position int32) time.Time {
	return now.AddDate(0, 0, int(position)*DaysPerQueuePosition)
}

// AvailabilityEstimate is the due-date-based estimator used for display.
// With no active loans it assumes one week. Otherwise it waits until the
// earliest due date (at least one day out) plus one week per queued
// reservation. Distinct from QueueEstimate; the two estimators disagree
// and are kept separate on purpose.
func AvailabilityEstimate(now time.Time, earliestDueDate *time.Time, queueLength int32) time.Time {
	days := DaysPerQueuePosition
	if earliestDueDate != nil {
		untilReturn := WholeDaysBetween(now, *earliestDueDate)
		if untilReturn < 1 {
			untilReturn = 1
		}
		days = untilReturn + int(queueLength)*DaysPerQueuePosition
	}
	return now.AddDate(0, 0, days)
}
