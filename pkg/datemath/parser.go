package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's reference timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

// ParseRange resolves a relative period to an inclusive [start, end] range.
// Supported: today, tomorrow, yesterday, this week, next week, past week,
// last week, and the single days "in N days/weeks/months" and "next <weekday>".
// The past week is the seven days ending today.
func (p *Parser) ParseRange(relative string, baseTime time.Time) (time.Time, time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tomorrow", "yesterday":
		start, _ := p.Parse(relative, baseTime)
		return start, p.EndOfDay(start), nil
	case "this week":
		start, end := p.Week(baseTime)
		return start, end, nil
	case "next week":
		start, end := p.Week(baseTime.AddDate(0, 0, 7))
		return start, end, nil
	case "past week", "last week":
		return p.StartOfDay(baseTime.AddDate(0, 0, -6)), p.EndOfDay(p.StartOfDay(baseTime)), nil
	}

	if strings.HasPrefix(relative, "in ") || strings.HasPrefix(relative, "next ") {
		start, err := p.Parse(relative, baseTime)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, p.EndOfDay(start), nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("unknown relative range: %q", relative)
}

// Week returns Monday 00:00:00 and Sunday 23:59:59 of the week containing t.
func (p *Parser) Week(t time.Time) (time.Time, time.Time) {
	day := p.StartOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	monday := day.AddDate(0, 0, -(weekday - 1))
	return monday, p.EndOfDay(monday.AddDate(0, 0, 6))
}

// Date builds the full-day range of the given calendar date.
// It returns false when the date does not exist (e.g. 31 February).
func (p *Parser) Date(year int, month time.Month, day int) (time.Time, time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, time.Time{}, false
	}
	start := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if start.Month() != month || start.Day() != day {
		return time.Time{}, time.Time{}, false
	}
	return start, p.EndOfDay(start), true
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
