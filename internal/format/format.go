/*
* Utility functions for formatting output.
 */
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Print string with max length, truncating with ellipsis.
func Abbrev(s string, max int) string {
	if len(s) <= max {
		return s
	}

	if max < 2 {
		// No room for anything but the ellipsis itself.
		return "…"
	}

	return s[:max-1] + "…"
}

// Number formats an integer with thousands separators, e.g. 1234567 becomes
// "1,234,567".
func Number(n int) string {
	s := strconv.Itoa(n)

	start := 0
	if strings.HasPrefix(s, "-") {
		start = 1
	}

	digits := s[start:]

	var b strings.Builder
	b.WriteString(s[:start])

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(",")
		}
	}

	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(",")
		}
	}

	return b.String()
}

// Signed is like Number but always carries an explicit sign, for net deltas.
func Signed(n int) string {
	if n >= 0 {
		return "+" + Number(n)
	}

	return Number(n)
}

// Percent renders a value already scaled to 0-100 with one decimal place.
func Percent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
