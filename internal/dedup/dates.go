package dedup

import (
	"strconv"
	"strings"
	"time"
)

// DateFormat pairs a human-readable pattern with its parser. Formats are
// consulted in fixed priority order; the first one that parses wins.
type DateFormat struct {
	Name  string
	Parse func(string) (time.Time, bool)
}

func layoutFormat(name, layout string) DateFormat {
	return DateFormat{
		Name: name,
		Parse: func(value string) (time.Time, bool) {
			t, err := time.Parse(layout, value)
			if err != nil {
				return time.Time{}, false
			}
			return t, true
		},
	}
}

// compactFormat parses separator-less digit strings where time.Parse layouts
// are ambiguous, validating month and day ranges explicitly.
func compactFormat(name string, width int, split func(string) (year, month, day int)) DateFormat {
	return DateFormat{
		Name: name,
		Parse: func(value string) (time.Time, bool) {
			if len(value) != width || !isDigits(value) {
				return time.Time{}, false
			}
			year, month, day := split(value)
			if month < 1 || month > 12 || day < 1 || day > 31 {
				return time.Time{}, false
			}
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		},
	}
}

// creationDateFormats is the ordered list of accepted DATE_CREATION_FAED
// shapes. Two-digit years follow the Go "06" convention (69 and above map to
// 19xx), matching how the legacy exports were produced.
var creationDateFormats = []DateFormat{
	layoutFormat("JJ/MM/AA", "02/01/06"),
	layoutFormat("JJ/MM/AAAA", "02/01/2006"),
	layoutFormat("AAAA-MM-JJ", "2006-01-02"),
	layoutFormat("JJ-MM-AAAA", "02-01-2006"),
	layoutFormat("JJ-MM-AA", "02-01-06"),
	layoutFormat("JJ.MM.AAAA", "02.01.2006"),
	layoutFormat("JJ.MM.AA", "02.01.06"),
	layoutFormat("AAAA/MM/JJ", "2006/01/02"),
	compactFormat("AAAAMMJJ", 8, func(s string) (int, int, int) {
		return atoi(s[:4]), atoi(s[4:6]), atoi(s[6:8])
	}),
	compactFormat("JJMMAAAA", 8, func(s string) (int, int, int) {
		return atoi(s[4:8]), atoi(s[2:4]), atoi(s[:2])
	}),
	compactFormat("JJMMAA", 6, func(s string) (int, int, int) {
		return expandYear(atoi(s[4:6])), atoi(s[2:4]), atoi(s[:2])
	}),
}

// ParseCreationDate tries each accepted format in priority order and returns
// the first parse that succeeds. The boolean is false when no format
// matches; callers treat that as a null date, never as a fatal error.
func ParseCreationDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, format := range creationDateFormats {
		if t, ok := format.Parse(trimmed); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func expandYear(yy int) int {
	if yy >= 69 {
		return 1900 + yy
	}
	return 2000 + yy
}
