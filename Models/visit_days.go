package Models

import (
	"strings"
	"time"
)

// VisitsToday reports whether the raw visit-days text schedules a visit on
// the given day. Matching is a heuristic: the literal token "daily", the full
// weekday name, its 3-letter abbreviation, or any stored token whose first
// three letters equal the abbreviation (so "Saturdays" still matches).
// Ambiguous short tokens like "Tu" do not match anything.
func VisitsToday(visitDays string, now time.Time) bool {
	dayFull := strings.ToLower(now.Weekday().String())
	dayAbbr := dayFull[:3]

	for _, token := range splitDays(visitDays) {
		if token == "daily" || token == dayFull || token == dayAbbr {
			return true
		}
		if len(token) >= 3 && token[:3] == dayAbbr {
			return true
		}
	}
	return false
}

// splitDays tokenizes the stored visit-days text on commas, semicolons and
// newlines, trimmed and lowercased, dropping empty tokens.
func splitDays(visitDays string) []string {
	fields := strings.FieldsFunc(visitDays, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		token := strings.ToLower(strings.TrimSpace(f))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
