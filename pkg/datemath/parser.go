package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Parser finds calendar-date expressions inside free text and resolves them
// against a reference date in the parser's timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser resolves dates in.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	reDayAfterTomorrow = regexp.MustCompile(`\bday\s+after\s+tomorrow\b|\bovermorrow\b`)
	reTomorrow         = regexp.MustCompile(`\btomorrow\b`)
	reToday            = regexp.MustCompile(`\btoday\b`)
	reNextWeek         = regexp.MustCompile(`\bnext\s+week\b`)
	reInDays           = regexp.MustCompile(`in\s+(\d+)\s+days?`)
	reDayMonthYear     = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4}|\d{2})\b`)
	reYearMonthDay     = regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`)
	reMonthDay         = regexp.MustCompile(`\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
)

// weekdayNames is ordered sunday..saturday; the first name found in the text wins.
var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var monthPrefixes = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// Parse scans text for a date expression and resolves it relative to ref.
// It reports false when no expression is found or the matched date does not
// exist on the calendar. ref is normalized to midnight and never mutated.
func (p *Parser) Parse(text string, ref time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	base := p.StartOfDay(ref)

	switch {
	case reDayAfterTomorrow.MatchString(lower):
		return base.AddDate(0, 0, 2), true
	case reTomorrow.MatchString(lower):
		return base.AddDate(0, 0, 1), true
	case reToday.MatchString(lower):
		return base, true
	case reNextWeek.MatchString(lower):
		return base.AddDate(0, 0, 7), true
	}

	if wd, ok := findWeekday(lower); ok {
		return p.nextWeekday(base, wd), true
	}

	if m := reInDays.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return base.AddDate(0, 0, n), true
	}

	if m := reDayMonthYear.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		return p.date(year, month, day)
	}

	if m := reYearMonthDay.FindStringSubmatch(lower); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return p.date(year, month, day)
	}

	if m := reMonthDay.FindStringSubmatch(lower); m != nil {
		month := monthPrefixes[m[1][:3]]
		day, _ := strconv.Atoi(m[2])
		year := base.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return p.date(year, int(month), day)
	}

	return time.Time{}, false
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// SameDay reports whether a and b fall on the same calendar day in the parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	return p.StartOfDay(a).Equal(p.StartOfDay(b))
}

func findWeekday(lower string) (time.Weekday, bool) {
	for i, name := range weekdayNames {
		if strings.Contains(lower, name) {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// nextWeekday never returns base itself: a weekday equal to today rolls a full week.
func (p *Parser) nextWeekday(base time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// date builds a calendar date, rejecting values time.Date would normalize
// (day 32, month 13, Feb 30 ...).
func (p *Parser) date(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

var reDatePhrase = regexp.MustCompile(`(?i)\s*\b(?:(?:on|by|due|for|until|before)\s+)?(?:` +
	`day\s+after\s+tomorrow|overmorrow|tomorrow|today|next\s+week|` +
	`(?:next\s+|this\s+)?(?:sun|mon|tues|wednes|thurs|fri|satur)day|` +
	`in\s+\d+\s+days?|` +
	`\d{1,2}[/-]\d{1,2}[/-](?:\d{4}|\d{2})|\d{4}[/-]\d{1,2}[/-]\d{1,2}|` +
	`(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?` +
	`)\b`)

// StripExpressions removes every date phrase Parse would recognize, together
// with a leading "on"/"by"/"due" style preposition. Case is preserved.
func StripExpressions(text string) string {
	return strings.TrimSpace(reDatePhrase.ReplaceAllString(text, ""))
}
