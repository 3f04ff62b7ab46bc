package recurrence

import "time"

// Next returns the occurrence that follows from. It is pure and total for
// validated rules; callers normalize seconds to zero before invoking.
//
// Weekly and bi-weekly rules keep the clock time of from. Monthly rules
// advance to the rule's anchor day in the next calendar month; when the
// anchor does not exist there (anchor 31 in a 30-day month) the date clamps
// down to the last day of that month, never rolling forward.
func Next(r Rule, from time.Time) time.Time {
	switch r.Kind {
	case KindWeekly:
		return from.AddDate(0, 0, 7)
	case KindBiWeekly:
		return from.AddDate(0, 0, 14)
	case KindMonthly:
		year, month, _ := from.Date()
		month++
		if month > time.December {
			month = time.January
			year++
		}
		day := clampDay(r.AnchorDay, year, month)
		return time.Date(year, month, day, from.Hour(), from.Minute(), 0, 0, from.Location())
	}
	return from
}

// FirstOnOrAfter finds the earliest instant at or after ref whose weekday
// (weekly/bi-weekly) or day-of-month (monthly) matches the rule's anchor,
// with the clock set to the rule's hour. "Today" qualifies only while the
// hour has not yet passed relative to ref.
func FirstOnOrAfter(r Rule, ref time.Time) time.Time {
	switch r.Kind {
	case KindWeekly, KindBiWeekly:
		day := time.Date(ref.Year(), ref.Month(), ref.Day(), r.HourOfDay, 0, 0, 0, ref.Location())
		for day.Weekday() != r.Weekday() || day.Before(ref) {
			day = day.AddDate(0, 0, 1)
		}
		return day
	case KindMonthly:
		year, month, _ := ref.Date()
		candidate := time.Date(year, month, clampDay(r.AnchorDay, year, month), r.HourOfDay, 0, 0, 0, ref.Location())
		if candidate.Before(ref) {
			month++
			if month > time.December {
				month = time.January
				year++
			}
			candidate = time.Date(year, month, clampDay(r.AnchorDay, year, month), r.HourOfDay, 0, 0, 0, ref.Location())
		}
		return candidate
	}
	return ref
}

func clampDay(day int, year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
