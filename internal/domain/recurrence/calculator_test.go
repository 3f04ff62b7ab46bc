//go:build unit

package recurrence_test

import (
	"testing"
	"time"

	"petagenda/internal/domain/recurrence"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestNext(t *testing.T) {
	cases := []struct {
		name string
		rule recurrence.Rule
		from time.Time
		want time.Time
	}{
		{
			name: "weekly advances seven days",
			rule: recurrence.Rule{Kind: recurrence.KindWeekly, AnchorWeekday: 1, HourOfDay: 9},
			from: date(2026, time.January, 5, 9, 0),
			want: date(2026, time.January, 12, 9, 0),
		},
		{
			name: "biweekly advances fourteen days",
			rule: recurrence.Rule{Kind: recurrence.KindBiWeekly, AnchorWeekday: 1, HourOfDay: 9},
			from: date(2026, time.January, 5, 9, 0),
			want: date(2026, time.January, 19, 9, 0),
		},
		{
			name: "weekly keeps the clock time of from",
			rule: recurrence.Rule{Kind: recurrence.KindWeekly, AnchorWeekday: 3, HourOfDay: 9},
			from: date(2026, time.January, 7, 14, 30),
			want: date(2026, time.January, 14, 14, 30),
		},
		{
			name: "monthly advances to anchor day next month",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 15, HourOfDay: 10},
			from: date(2026, time.January, 15, 10, 0),
			want: date(2026, time.February, 15, 10, 0),
		},
		{
			name: "monthly clamps day 31 down in a short month",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 31, HourOfDay: 10},
			from: date(2026, time.January, 31, 10, 30),
			want: date(2026, time.February, 28, 10, 30),
		},
		{
			name: "monthly recovers the full anchor after a clamped month",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 31, HourOfDay: 10},
			from: date(2026, time.February, 28, 10, 0),
			want: date(2026, time.March, 31, 10, 0),
		},
		{
			name: "monthly clamps to february 29 in a leap year",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 30, HourOfDay: 8},
			from: date(2028, time.January, 30, 8, 0),
			want: date(2028, time.February, 29, 8, 0),
		},
		{
			name: "monthly rolls the year over from december",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 15, HourOfDay: 9},
			from: date(2026, time.December, 15, 9, 0),
			want: date(2027, time.January, 15, 9, 0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, recurrence.Next(tc.rule, tc.from))
		})
	}
}

func TestFirstOnOrAfter(t *testing.T) {
	cases := []struct {
		name string
		rule recurrence.Rule
		ref  time.Time
		want time.Time
	}{
		{
			name: "same weekday before the hour matches today",
			rule: recurrence.Rule{Kind: recurrence.KindWeekly, AnchorWeekday: 1, HourOfDay: 9},
			ref:  date(2026, time.January, 5, 8, 0), // Monday
			want: date(2026, time.January, 5, 9, 0),
		},
		{
			name: "same weekday after the hour moves a week out",
			rule: recurrence.Rule{Kind: recurrence.KindWeekly, AnchorWeekday: 1, HourOfDay: 9},
			ref:  date(2026, time.January, 5, 10, 0),
			want: date(2026, time.January, 12, 9, 0),
		},
		{
			name: "weekday seven means sunday",
			rule: recurrence.Rule{Kind: recurrence.KindWeekly, AnchorWeekday: 7, HourOfDay: 9},
			ref:  date(2026, time.January, 5, 8, 0),
			want: date(2026, time.January, 11, 9, 0),
		},
		{
			name: "exactly at the hour matches today",
			rule: recurrence.Rule{Kind: recurrence.KindBiWeekly, AnchorWeekday: 1, HourOfDay: 9},
			ref:  date(2026, time.January, 5, 9, 0),
			want: date(2026, time.January, 5, 9, 0),
		},
		{
			name: "monthly anchor still ahead this month",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 15, HourOfDay: 9},
			ref:  date(2026, time.January, 10, 12, 0),
			want: date(2026, time.January, 15, 9, 0),
		},
		{
			name: "monthly anchor already past moves to next month",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 15, HourOfDay: 9},
			ref:  date(2026, time.January, 20, 12, 0),
			want: date(2026, time.February, 15, 9, 0),
		},
		{
			name: "monthly anchor clamps in the reference month",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 31, HourOfDay: 9},
			ref:  date(2026, time.February, 10, 0, 0),
			want: date(2026, time.February, 28, 9, 0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, recurrence.FirstOnOrAfter(tc.rule, tc.ref))
		})
	}
}

func TestRuleValidate(t *testing.T) {
	cases := []struct {
		name  string
		rule  recurrence.Rule
		errIs error
	}{
		{
			name: "valid weekly rule",
			rule: recurrence.Rule{Kind: recurrence.KindWeekly, AnchorWeekday: 1, HourOfDay: 9},
		},
		{
			name: "valid monthly rule",
			rule: recurrence.Rule{Kind: recurrence.KindMonthly, AnchorDay: 31, HourOfDay: 0},
		},
		{
			name:  "unknown kind",
			rule:  recurrence.Rule{Kind: "daily", AnchorWeekday: 1, HourOfDay: 9},
			errIs: recurrence.ErrInvalidKind,
		},
		{
			name:  "weekly without weekday anchor",
			rule:  recurrence.Rule{Kind: recurrence.KindWeekly, HourOfDay: 9},
			errIs: recurrence.ErrMissingWeekday,
		},
		{
			name:  "weekly with weekday out of range",
			rule:  recurrence.Rule{Kind: recurrence.KindBiWeekly, AnchorWeekday: 8, HourOfDay: 9},
			errIs: recurrence.ErrMissingWeekday,
		},
		{
			name:  "monthly without day anchor",
			rule:  recurrence.Rule{Kind: recurrence.KindMonthly, HourOfDay: 9},
			errIs: recurrence.ErrMissingDay,
		},
		{
			name:  "hour out of range",
			rule:  recurrence.Rule{Kind: recurrence.KindWeekly, AnchorWeekday: 1, HourOfDay: 24},
			errIs: recurrence.ErrInvalidHour,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
