package statement

import (
	"regexp"
	"strings"
	"time"
)

// Date formats seen across Indian bank statements, tried in order.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02/01/06",
	"02-Jan-2006",
	"02-Jan-06",
	"02 Jan 2006",
	"2006-01-02",
}

var datePrefixPattern = regexp.MustCompile(
	`^(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{1,2}[- ](?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[- ]\d{2,4}|\d{4}-\d{2}-\d{2})\b`,
)

// leadingDate extracts a date token from the start of a line. Returns the
// parsed date, the rest of the line, and whether a date was found.
func leadingDate(line string) (time.Time, string, bool) {
	m := datePrefixPattern.FindString(line)
	if m == "" {
		return time.Time{}, line, false
	}

	d, ok := parseDate(m)
	if !ok {
		return time.Time{}, line, false
	}

	return d, strings.TrimSpace(line[len(m):]), true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	// Normalize single-digit day/month so one layout per separator suffices.
	s = padDateDigits(s)

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}

	return time.Time{}, false
}

// padDateDigits turns "1/4/2024" into "01/04/2024" (same for "-").
func padDateDigits(s string) string {
	for _, sep := range []string{"/", "-", " "} {
		parts := strings.Split(s, sep)
		if len(parts) != 3 {
			continue
		}

		changed := false

		for i, p := range parts[:2] {
			if len(p) == 1 && p[0] >= '0' && p[0] <= '9' {
				parts[i] = "0" + p
				changed = true
			}
		}

		if changed {
			return strings.Join(parts, sep)
		}

		return s
	}

	return s
}
