package entity

import "time"

// Period is the half-open interval [From, To) in UTC.
type Period struct {
	From time.Time
	To   time.Time
}

// MonthPeriod covers the whole calendar month of year/month.
func MonthPeriod(year int, month time.Month) Period {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return Period{From: from, To: from.AddDate(0, 1, 0)}
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	t = t.UTC()

	return !t.Before(p.From) && t.Before(p.To)
}
