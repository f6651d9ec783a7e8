package cronexpr

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := []string{"* * * * *", "*/15 0 1,15 * 1-5", "@daily", "30 4 1 1 MON"}
	for _, expr := range valid {
		if err := Validate(expr); err != nil {
			t.Fatalf("%q should be valid: %v", expr, err)
		}
	}
	invalid := []string{"", "* * * *", "61 * * * *", "* * * * MONDAY-FRI"}
	for _, expr := range invalid {
		if err := Validate(expr); err == nil {
			t.Fatalf("%q should be invalid", expr)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"* * * * *", "Every minute"},
		{"*/15 * * * *", "Every 15 minutes"},
		{"30 4 1 1 *", "At 04:30 on day-of-month 1 in January"},
		{"0 9-17 * * MON-FRI", "At minute 0 past every hour from 9 through 17 on Monday through Friday"},
		{"5 0 * 8 *", "At 00:05 in August"},
		{"0 0 1,15 * *", "At 00:00 on day-of-month 1 and 15"},
		{"@hourly", "Once an hour, at the top of the hour"},
	}
	for _, tc := range cases {
		got, err := Describe(tc.expr)
		if err != nil {
			t.Fatalf("Describe(%q): %v", tc.expr, err)
		}
		if got != tc.want {
			t.Fatalf("Describe(%q):\ngot  %q\nwant %q", tc.expr, got, tc.want)
		}
	}
}

func TestDescribe_Invalid(t *testing.T) {
	if _, err := Describe("not a cron"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNextRuns(t *testing.T) {
	from := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	runs, err := NextRuns("*/30 * * * *", 3, from)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	want := []time.Time{
		time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 11, 30, 0, 0, time.UTC),
	}
	for i := range want {
		if !runs[i].Equal(want[i]) {
			t.Fatalf("run %d: got %v, want %v", i, runs[i], want[i])
		}
	}
}

func TestNextRuns_NonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		runs, err := NextRuns("* * * * *", n, time.Now())
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(runs) != 0 {
			t.Fatalf("n=%d: expected no runs, got %d", n, len(runs))
		}
	}
}

func TestNextRuns_Ordered(t *testing.T) {
	runs, err := NextRuns("0 0 * * *", 5, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(runs); i++ {
		if !runs[i].After(runs[i-1]) {
			t.Fatalf("runs not strictly increasing at %d", i)
		}
	}
}
