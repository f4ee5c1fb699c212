package render

import "time"

// Layouts tried when parsing an incoming datetime string, most common
// first.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006, 15:04:05",
}

const (
	// full: long weekday and month with 12-hour time,
	// e.g. "Monday January, 2, 2006 at 3:04PM"
	fullLayout = "Monday January, 2, 2006 at 3:04PM"
	// medium: abbreviated weekday, zero-padded month and day,
	// e.g. "Mon 01, 02, 2006 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDatetime is the template `datetime` filter: it parses an
// ISO-ish date string and renders it in the requested mode. Any mode
// other than "full" falls back to "medium". An unparseable value is
// returned unchanged so a bad row never breaks a page render.
func FormatDatetime(value, mode string) string {
	var parsed time.Time
	var err error
	for _, layout := range parseLayouts {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return value
	}

	switch mode {
	case "full":
		return parsed.Format(fullLayout)
	default:
		return parsed.Format(mediumLayout)
	}
}
