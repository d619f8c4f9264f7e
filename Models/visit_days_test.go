package Models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-11-01 is a Saturday, 2025-11-04 a Tuesday.
var (
	aSaturday = time.Date(2025, time.November, 1, 10, 0, 0, 0, time.UTC)
	aTuesday  = time.Date(2025, time.November, 4, 10, 0, 0, 0, time.UTC)
)

func TestVisitsToday(t *testing.T) {
	tests := []struct {
		name      string
		visitDays string
		now       time.Time
		want      bool
	}{
		{"daily always matches", "daily", aTuesday, true},
		{"daily among other days", "Monday, daily", aSaturday, true},
		{"full day name match", "Saturday", aSaturday, true},
		{"full day name no match on other days", "Saturday", aTuesday, false},
		{"case insensitive", "sAtUrDay", aSaturday, true},
		{"three letter abbreviation", "Sat", aSaturday, true},
		{"prefix variant matches", "Saturdays", aSaturday, true},
		{"comma separated list", "Monday,Saturday", aSaturday, true},
		{"semicolon separated list", "Monday; Saturday", aSaturday, true},
		{"newline separated list", "Monday\nSaturday", aSaturday, true},
		{"whitespace trimmed", "  saturday  ", aSaturday, true},
		{"no match in list", "Monday,Wednesday", aSaturday, false},
		{"empty value", "", aSaturday, false},
		{"only separators", ", ;", aSaturday, false},
		{"two letter token too short to match", "Tu", aTuesday, false},
		{"thu does not match tuesday", "Thu", aTuesday, false},
		{"tue matches tuesday", "Tue", aTuesday, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisitsToday(tt.visitDays, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisitsTodayEveryWeekday(t *testing.T) {
	// "Saturday" must match exactly one day of the week.
	matches := 0
	for d := 0; d < 7; d++ {
		day := aSaturday.AddDate(0, 0, d)
		if VisitsToday("Saturday", day) {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}
