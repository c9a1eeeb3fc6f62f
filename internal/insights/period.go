package insights

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type PeriodKind string

const (
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
)

// Window is a closed interval: both Start and End are inside the period.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window, ends included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolvePeriod turns a period anchor into its calendar window.
//
// Monthly anchors look like "2024-06" and cover the whole calendar
// month. Weekly anchors look like "2024-W23"; week 1 starts on Jan 1
// of the given year and every following week is exactly 7 days later.
// That layout is not ISO week numbering and is kept for compatibility
// with the anchors stored by existing dashboards.
func ResolvePeriod(kind PeriodKind, anchor string) (Window, error) {
	switch kind {
	case PeriodMonthly:
		year, month, err := parseMonthlyAnchor(anchor)
		if err != nil {
			return Window{}, err
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return Window{Start: start, End: end}, nil

	case PeriodWeekly:
		year, week, err := parseWeeklyAnchor(anchor)
		if err != nil {
			return Window{}, err
		}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, (week-1)*7)
		end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
		return Window{Start: start, End: end}, nil

	default:
		return Window{}, fmt.Errorf("%w: unknown period kind %q", ErrInvalidPeriodAnchor, kind)
	}
}

// PreviousAnchor returns the anchor of the immediately preceding
// period of the same kind. For weekly anchors, week 1 wraps to week 52
// of the previous year regardless of how many weeks that year laid
// out; the wrap matches the stored anchors and is intentionally not
// corrected for 53-week years.
func PreviousAnchor(kind PeriodKind, anchor string) (string, error) {
	switch kind {
	case PeriodMonthly:
		year, month, err := parseMonthlyAnchor(anchor)
		if err != nil {
			return "", err
		}
		month--
		if month == 0 {
			month = 12
			year--
		}
		return fmt.Sprintf("%04d-%02d", year, month), nil

	case PeriodWeekly:
		year, week, err := parseWeeklyAnchor(anchor)
		if err != nil {
			return "", err
		}
		week--
		if week == 0 {
			week = 52
			year--
		}
		return fmt.Sprintf("%04d-W%02d", year, week), nil

	default:
		return "", fmt.Errorf("%w: unknown period kind %q", ErrInvalidPeriodAnchor, kind)
	}
}

// WeeksInPeriod is the divisor used for posting cadence. Monthly
// periods use 4 by convention, not the true week count.
func WeeksInPeriod(kind PeriodKind) int {
	if kind == PeriodMonthly {
		return 4
	}
	return 1
}

func parseMonthlyAnchor(anchor string) (year, month int, err error) {
	parts := strings.Split(anchor, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodAnchor, anchor)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodAnchor, anchor)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodAnchor, anchor)
	}
	return year, month, nil
}

func parseWeeklyAnchor(anchor string) (year, week int, err error) {
	parts := strings.Split(anchor, "-W")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodAnchor, anchor)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodAnchor, anchor)
	}
	week, err = strconv.Atoi(parts[1])
	if err != nil || week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodAnchor, anchor)
	}
	return year, week, nil
}
