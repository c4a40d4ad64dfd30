package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate is one day of the horizontal calendar on the flight search screen.
type CalendarDate struct {
	DayOfWeek  string `json:"day_of_week"`
	DayOfMonth string `json:"day_of_month"`
	Date       string `json:"date"`
}

// ParsePrice converts a dollar price string to its amount
// Example: "$650" -> 650, "$12.5" -> 12.5
func ParsePrice(price string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimPrefix(price, "$"), 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", price, err)
	}

	return amount, nil
}

// ParseHour returns the hour of a "HH:MM" time of day
// Example: "09:30" -> 9
func ParseHour(timeOfDay string) (int, error) {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", timeOfDay, err)
	}

	return parsed.Hour(), nil
}

// CalendarWeek returns the seven days from the Monday of the week containing date
// Example: 2024-07-10 (Wednesday) -> MON 08 2024-07-08 ... SUN 14 2024-07-14
func CalendarWeek(date time.Time) []CalendarDate {
	offset := (int(date.Weekday()) + 6) % 7
	monday := date.AddDate(0, 0, -offset)

	week := make([]CalendarDate, 7)
	for i := range week {
		day := monday.AddDate(0, 0, i)
		week[i] = CalendarDate{
			DayOfWeek:  strings.ToUpper(day.Format("Mon")),
			DayOfMonth: day.Format("02"),
			Date:       day.Format(time.DateOnly),
		}
	}

	return week
}
