package services

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDay validates a calendar key in "YYYY-MM-DD" form.
func ParseDay(date string) (time.Time, error) {
	day, err := time.Parse(dayLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrValidation, date)
	}
	return day, nil
}

func FormatDay(day time.Time) string {
	return day.Format(dayLayout)
}

// PreviousDay is plain calendar subtraction, not business-day aware.
func PreviousDay(date string) (string, error) {
	day, err := ParseDay(date)
	if err != nil {
		return "", err
	}
	return FormatDay(day.AddDate(0, 0, -1)), nil
}
