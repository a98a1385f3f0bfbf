package spacing

import (
	"regexp"
	"strconv"
	"strings"
)

// Thou is one thousandth of an inch, the unit gauges and gaps are entered in.
const Thou = 0.001

var numberPrefixRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber parses the longest decimal prefix of s after leading whitespace,
// so "12abc" yields 12 and " .5" yields 0.5. It reports false when s does not
// start with a number.
func ParseNumber(s string) (float64, bool) {
	m := numberPrefixRe.FindString(strings.TrimLeft(s, " \t\r\n\v\f"))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Only reachable on exponent overflow.
		return 0, false
	}
	return f, true
}

// ParseCourse parses one line of comma-separated gauges in thou and returns
// them in inches. Tokens without a numeric prefix are dropped.
func ParseCourse(line string) Course {
	tokens := strings.Split(line, ",")
	course := make(Course, 0, len(tokens))
	for _, tok := range tokens {
		if n, ok := ParseNumber(tok); ok {
			course = append(course, n*Thou)
		}
	}
	return course
}

// ParseCourses parses configuration text into courses. Lines are trimmed,
// blank lines are dropped and the order is reversed, so the last line of
// text is the first course laid out. Lines without a single valid gauge are
// dropped as well.
func ParseCourses(text string) []Course {
	lines := strings.Split(text, "\n")
	courses := make([]Course, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if c := ParseCourse(line); len(c) > 0 {
			courses = append(courses, c)
		}
	}
	return courses
}
