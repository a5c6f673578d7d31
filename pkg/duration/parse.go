// Package duration parses the duration settings found in config files and
// environment variables.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Day is 24 hours.
const Day = 24 * time.Hour

var dayPattern = regexp.MustCompile(`^(\d+)d(.*)$`)

// Parse extends time.ParseDuration with a leading day component ("1d12h")
// and bare integers, which are read as seconds ("3600").
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("invalid duration %q: negative", s)
		}
		return time.Duration(secs) * time.Second, nil
	}

	var total time.Duration
	if m := dayPattern.FindStringSubmatch(s); m != nil {
		days, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total = time.Duration(days) * Day
		s = m[2]
		if s == "" {
			return total, nil
		}
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w (supported units: ns, us, ms, s, m, h, d)", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration %q: negative", s)
	}
	return total + d, nil
}

// ParseOr parses s, returning fallback when s is empty.
func ParseOr(s string, fallback time.Duration) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return Parse(s)
}
