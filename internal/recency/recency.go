// Package recency classifies the free-form relative-time phrases HelloWork
// attaches to its listings ("il y a 3 heures", "hier", "il y a 2 semaines").
// The phrases are display strings, not timestamps, so everything here is
// heuristic and fails open: an offer we cannot date is kept.
package recency

import (
	"regexp"
	"strconv"
	"strings"
)

// weeksWindow / monthsWindow bound the 3-month freshness window.
const (
	weeksWindow  = 13
	monthsWindow = 3
)

var leadingInt = regexp.MustCompile(`\d+`)

// WithinWindow reports whether a posting dated by the given relative phrase
// is still inside the 3-month window. Empty or unrecognized phrases pass.
func WithinWindow(postedAt string) bool {
	if postedAt == "" {
		return true
	}
	p := strings.ToLower(postedAt)

	// Anything denominated in hours or days is always fresh enough.
	if strings.Contains(p, "heure") ||
		strings.Contains(p, "aujourd'hui") ||
		strings.Contains(p, "hier") ||
		strings.Contains(p, "jour") {
		return true
	}

	if strings.Contains(p, "semaine") {
		return extractCount(p) < weeksWindow
	}
	if strings.Contains(p, "mois") {
		return extractCount(p) < monthsWindow
	}

	return true
}

// Score converts a relative phrase into an hours-equivalent used only for
// ordering: lower means fresher. Phrases with no hour/day/week unit score 0
// and therefore sort first.
func Score(postedAt string) int {
	if postedAt == "" {
		return 0
	}
	p := strings.ToLower(postedAt)

	switch {
	case strings.Contains(p, "aujourd'hui"):
		return 0
	case strings.Contains(p, "hier"):
		return 24
	case strings.Contains(p, "heure"):
		return extractCount(p)
	case strings.Contains(p, "jour"):
		return extractCount(p) * 24
	case strings.Contains(p, "semaine"):
		return extractCount(p) * 24 * 7
	}
	return 0
}

func extractCount(p string) int {
	m := leadingInt.FindString(p)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
