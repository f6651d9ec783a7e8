// Package cronexpr validates cron expressions, computes upcoming run
// times, and renders human-readable descriptions of 5-field schedules.
package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

var parser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Validate checks that expr is a parseable cron expression (5 fields or a
// descriptor like @daily).
func Validate(expr string) error {
	if _, err := parser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// NextRuns returns the next n run times of expr strictly after from.
// A non-positive n yields no runs.
func NextRuns(expr string, n int, from time.Time) ([]time.Time, error) {
	sched, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	if n < 1 {
		return nil, nil
	}
	runs := make([]time.Time, 0, n)
	t := from
	for i := 0; i < n; i++ {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		runs = append(runs, t)
	}
	return runs, nil
}

var descriptors = map[string]string{
	"@yearly":   "Once a year, at midnight on January 1st",
	"@annually": "Once a year, at midnight on January 1st",
	"@monthly":  "Once a month, at midnight on the first of the month",
	"@weekly":   "Once a week, at midnight on Sunday",
	"@daily":    "Once a day, at midnight",
	"@midnight": "Once a day, at midnight",
	"@hourly":   "Once an hour, at the top of the hour",
}

var monthNames = []string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var monthAliases = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

var dayAliases = map[string]int{
	"SUN": 0, "MON": 1, "TUE": 2, "WED": 3, "THU": 4, "FRI": 5, "SAT": 6,
}

// Describe renders expr as an English sentence. The expression must be
// valid; descriptors get fixed texts.
func Describe(expr string) (string, error) {
	if err := Validate(expr); err != nil {
		return "", err
	}
	expr = strings.TrimSpace(expr)
	if d, ok := descriptors[strings.ToLower(expr)]; ok {
		return d, nil
	}
	f := strings.Fields(expr)
	if len(f) != 5 {
		return "", fmt.Errorf("expected 5 fields, got %d", len(f))
	}
	min, hour, dom, month, dow := f[0], f[1], f[2], f[3], f[4]

	var parts []string
	switch {
	case isNumber(min) && isNumber(hour):
		m, _ := strconv.Atoi(min)
		h, _ := strconv.Atoi(hour)
		parts = append(parts, fmt.Sprintf("At %02d:%02d", h, m))
	case min == "*" && hour == "*":
		parts = append(parts, "Every minute")
	default:
		parts = append(parts, fieldPhrase(min, "minute", nil))
		if hour != "*" {
			parts = append(parts, "past "+strings.TrimPrefix(fieldPhrase(hour, "hour", nil), "at "))
		}
	}
	if dom != "*" {
		parts = append(parts, "on day-of-month "+valuePhrase(dom, nil))
	}
	if month != "*" {
		parts = append(parts, "in "+valuePhrase(month, monthName))
	}
	if dow != "*" {
		parts = append(parts, "on "+valuePhrase(dow, dayName))
	}

	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:], nil
}

// fieldPhrase describes a minute or hour field: "every minute",
// "every 15 minutes", "at minute 0", "every minute from 5 through 10".
func fieldPhrase(field, unit string, name func(string) string) string {
	switch {
	case field == "*":
		return "every " + unit
	case strings.HasPrefix(field, "*/"):
		return fmt.Sprintf("every %s %ss", field[2:], unit)
	case strings.Contains(field, "-") && strings.Contains(field, "/"):
		rng, step, _ := strings.Cut(field, "/")
		lo, hi, _ := strings.Cut(rng, "-")
		return fmt.Sprintf("every %s %ss from %s through %s", step, unit, lo, hi)
	case strings.Contains(field, "-"):
		lo, hi, _ := strings.Cut(field, "-")
		return fmt.Sprintf("every %s from %s through %s", unit, lo, hi)
	default:
		return fmt.Sprintf("at %s %s", unit, valuePhrase(field, name))
	}
}

// valuePhrase renders a value, list or range with an optional name
// translation (month and weekday fields).
func valuePhrase(field string, name func(string) string) string {
	if name == nil {
		name = func(s string) string { return s }
	}
	if lo, hi, ok := strings.Cut(field, "-"); ok && !strings.Contains(field, ",") {
		return name(lo) + " through " + name(hi)
	}
	items := strings.Split(field, ",")
	for i, it := range items {
		items[i] = name(it)
	}
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func monthName(s string) string {
	if n, ok := monthAliases[strings.ToUpper(s)]; ok {
		return monthNames[n]
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 12 {
		return monthNames[n]
	}
	return s
}

func dayName(s string) string {
	if n, ok := dayAliases[strings.ToUpper(s)]; ok {
		return dayNames[n]
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 7 {
		return dayNames[n%7]
	}
	return s
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
