package domain

import (
	"regexp"
	"time"
)

// DeadlineFormat is the canonical stored form of an application deadline
const DeadlineFormat = "2006-01-02"

var deadlinePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// deadlineLayouts are tried in order when the input is not already in
// canonical form
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// NormalizeDeadline validates a deadline string and returns its canonical
// YYYY-MM-DD form. Input already in canonical form is returned unchanged,
// provided it resolves to a real calendar date. Anything unparseable yields
// ErrInvalidDeadline; there is no fallback to the current date.
func NormalizeDeadline(input string) (string, error) {
	if deadlinePattern.MatchString(input) {
		if _, err := time.Parse(DeadlineFormat, input); err != nil {
			return "", ErrInvalidDeadline
		}
		return input, nil
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Format(DeadlineFormat), nil
		}
	}

	return "", ErrInvalidDeadline
}
