package whatsapp

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// The normaliser is an ordered list of pure attempts: a tolerant general
// pass first, then explicit templates in the matched dialect's day order.
// Purely numeric dates like 3/4/25 are inherently ambiguous; the general
// pass keeps the month-first guess the original exports default to, and
// only the explicit chain applies the dialect's day-first assumption.

// General pass: month-first and ISO layouts, 12h and 24h, optional seconds.
var generalLayouts = []string{
	"1/2/06, 3:04 PM",
	"1/2/2006, 3:04 PM",
	"1/2/06, 3:04:05 PM",
	"1/2/2006, 3:04:05 PM",
	"1/2/06, 15:04",
	"1/2/2006, 15:04",
	"1/2/06, 15:04:05",
	"1/2/2006, 15:04:05",
	"2006-1-2, 15:04",
	"2006-1-2, 15:04:05",
	"2006-1-2, 3:04 PM",
	"2006-1-2, 3:04:05 PM",
}

// Explicit fallback templates, tried in fixed order.
var monthFirstLayouts = []string{
	"1/2/06, 3:04 PM",
	"1/2/2006, 3:04 PM",
	"1/2/06, 15:04",
	"1/2/2006, 15:04",
	"1/2/06, 15:04:05",
	"1/2/2006, 15:04:05",
}

var dayFirstLayouts = []string{
	"2/1/06, 15:04",
	"2/1/2006, 15:04",
	"2/1/06, 15:04:05",
	"2/1/2006, 15:04:05",
	"2/1/06, 3:04 PM",
	"2/1/2006, 3:04 PM",
}

var isoLayouts = []string{
	"2006-1-2, 15:04",
	"2006-1-2, 15:04:05",
}

var spaceRe = regexp.MustCompile(`\s+`)

// parseTimestamp converts a captured timestamp substring into a naive
// instant (UTC, no inferred zone). dayFirst carries the matched dialect's
// day/month ordering into the explicit fallback chain.
func parseTimestamp(s string, dayFirst bool) (time.Time, error) {
	s = canonicalise(s)

	for _, layout := range generalLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	// Explicit templates. The matched dialect's day order goes first, but
	// the other order is always tried last: an unambiguous day-first date
	// (day > 12) must parse no matter which header shape carried it.
	var layouts []string
	if dayFirst {
		layouts = append(layouts, dayFirstLayouts...)
	}
	layouts = append(layouts, monthFirstLayouts...)
	layouts = append(layouts, isoLayouts...)
	if !dayFirst {
		layouts = append(layouts, dayFirstLayouts...)
	}

	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// canonicalise smooths over the loose punctuation real exports produce:
// uneven whitespace, lowercase meridiems, missing space before AM/PM.
func canonicalise(s string) string {
	s = strings.TrimSpace(s)
	s = spaceRe.ReplaceAllString(s, " ")

	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem := upper[len(upper)-2:]
		s = strings.TrimSpace(s[:len(s)-2]) + " " + meridiem
	}

	return s
}
