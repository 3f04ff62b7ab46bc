package recurrence

import (
	"errors"
	"time"
)

var (
	ErrInvalidKind    = errors.New("invalid recurrence kind")
	ErrMissingWeekday = errors.New("recurrence rule requires a weekday anchor")
	ErrMissingDay     = errors.New("recurrence rule requires a day-of-month anchor")
	ErrInvalidHour    = errors.New("hour of day must be between 0 and 23")
)

type Kind string

const (
	KindWeekly   Kind = "weekly"
	KindBiWeekly Kind = "biweekly"
	KindMonthly  Kind = "monthly"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindWeekly, KindBiWeekly, KindMonthly:
		return true
	default:
		return false
	}
}

// Rule describes when a subscription recurs. Exactly one anchor is
// meaningful, selected by Kind: AnchorWeekday for weekly/bi-weekly rules,
// AnchorDay for monthly rules. HourOfDay is a whole hour in business-local
// time.
type Rule struct {
	Kind          Kind
	AnchorWeekday int // 1=Monday .. 7=Sunday
	AnchorDay     int // 1..31
	HourOfDay     int // 0..23
}

func (r Rule) Validate() error {
	if !r.Kind.IsValid() {
		return ErrInvalidKind
	}
	if r.HourOfDay < 0 || r.HourOfDay > 23 {
		return ErrInvalidHour
	}
	switch r.Kind {
	case KindWeekly, KindBiWeekly:
		if r.AnchorWeekday < 1 || r.AnchorWeekday > 7 {
			return ErrMissingWeekday
		}
	case KindMonthly:
		if r.AnchorDay < 1 || r.AnchorDay > 31 {
			return ErrMissingDay
		}
	}
	return nil
}

// Weekday translates the rule's 1=Monday..7=Sunday numbering into the
// standard library's 0=Sunday..6=Saturday. Days 1..6 map unchanged.
func (r Rule) Weekday() time.Weekday {
	if r.AnchorWeekday == 7 {
		return time.Sunday
	}
	return time.Weekday(r.AnchorWeekday)
}
