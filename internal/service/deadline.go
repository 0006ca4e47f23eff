package service

import "time"

// NoDueDate is the formatted text for tasks without a due date.
const NoDueDate = "Not set"

// Deadline is the derived view of a task's due date. DaysRemaining is
// nil when there is no due date; Overdue and DueSoon are mutually
// exclusive.
type Deadline struct {
	Formatted     string `json:"data_limite_formatada"`
	DaysRemaining *int   `json:"dias_restantes"`
	Overdue       bool   `json:"vencida"`
	DueSoon       bool   `json:"proxima"`
}

// dueSoonWindow is the inclusive number of days ahead within which a
// task counts as due soon.
const dueSoonWindow = 3

// ComputeDeadline derives the due-date fields for a task. It is pure:
// "today" comes in as an argument, and only the calendar dates of both
// inputs matter. A nil or zero due date yields the empty derivation.
func ComputeDeadline(due *time.Time, today time.Time) Deadline {
	if due == nil || due.IsZero() {
		return Deadline{Formatted: NoDueDate}
	}
	days := daysBetween(today, *due)
	return Deadline{
		Formatted:     due.Format("02/01/2006"),
		DaysRemaining: &days,
		Overdue:       days < 0,
		DueSoon:       days >= 0 && days <= dueSoonWindow,
	}
}

// daysBetween counts whole calendar days from a to b, negative when b
// precedes a. Both are normalized to UTC midnight so time-of-day and
// zone offsets cannot skew the count.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
