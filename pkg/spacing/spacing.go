package spacing

import "math"

// Course is the ordered gauges, in inches, of the strings played together as
// one unit. Most courses hold a single string.
type Course []float64

// Params holds the layout dimensions, all in inches.
type Params struct {
	Width       float64 // nut or saddle width
	StartGap    float64 // clearance before the first string
	EndGap      float64 // clearance after the last string
	InCourseGap float64 // gap between strings of the same course
}

// Placement positions one string relative to the end of the previous one.
type Placement struct {
	Gap   float64 // space before the string
	Width float64 // string gauge
}

// Layout is the result of a spacing computation. It is a value type; every
// computation starts from scratch.
type Layout struct {
	Params  Params
	Courses []Course

	// CoursesSpace is the width occupied by strings and in-course gaps.
	CoursesSpace float64
	// Remaining is the width left for the gaps between courses.
	// It is negative for over-full configurations.
	Remaining float64
	// Between is the gap between adjacent courses.
	Between float64

	lengths []float64
}

// Expand returns a course as alternating string widths and in-course gaps,
// starting and ending with a string width.
func Expand(c Course, inCourseGap float64) []float64 {
	if len(c) == 0 {
		return nil
	}
	out := make([]float64, 0, 2*len(c)-1)
	for i, w := range c {
		if i > 0 {
			out = append(out, inCourseGap)
		}
		out = append(out, w)
	}
	return out
}

// Compute lays out courses within p. Courses are laid out left to right in the
// order given; use [ParseCourses] to get the reversed text order. An empty
// course list yields an empty layout.
func Compute(p Params, courses []Course) Layout {
	l := Layout{Params: p, Courses: courses}
	if len(courses) == 0 {
		return l
	}

	expanded := make([][]float64, len(courses))
	for i, c := range courses {
		expanded[i] = Expand(c, p.InCourseGap)
		for _, n := range expanded[i] {
			l.CoursesSpace += math.Abs(n)
		}
	}

	l.Remaining = p.Width - (p.StartGap + p.EndGap + l.CoursesSpace)
	if len(courses) > 1 {
		l.Between = l.Remaining / float64(len(courses)-1)
	}

	l.lengths = append(l.lengths, p.StartGap)
	for i, e := range expanded {
		if i > 0 {
			l.lengths = append(l.lengths, l.Between)
		}
		l.lengths = append(l.lengths, e...)
	}
	l.lengths = append(l.lengths, p.EndGap)
	return l
}

// Calculate parses configuration text and computes its layout.
func Calculate(p Params, text string) Layout {
	return Compute(p, ParseCourses(text))
}

// Empty reports whether there is nothing to lay out.
func (l Layout) Empty() bool { return len(l.Courses) == 0 }

// Overfull reports whether the strings and side gaps exceed the width.
func (l Layout) Overfull() bool { return l.Remaining < 0 }

// StringCount returns the number of strings across all courses.
func (l Layout) StringCount() int {
	n := 0
	for _, c := range l.Courses {
		n += len(c)
	}
	return n
}

// Lengths returns the full alternating sequence of gaps and string widths,
// starting with the start gap and ending with the end gap.
func (l Layout) Lengths() []float64 {
	out := make([]float64, len(l.lengths))
	copy(out, l.lengths)
	return out
}

// Chunks pairs [Layout.Lengths] into placements. The sequence has an odd
// length, so the last chunk carries the end gap and a zero width.
func (l Layout) Chunks() []Placement {
	chunks := make([]Placement, 0, len(l.lengths)/2+1)
	for i := 0; i < len(l.lengths); i += 2 {
		p := Placement{Gap: l.lengths[i]}
		if i+1 < len(l.lengths) {
			p.Width = l.lengths[i+1]
		}
		chunks = append(chunks, p)
	}
	return chunks
}

// Strings returns one placement per string, without the terminal end-gap
// chunk.
func (l Layout) Strings() []Placement {
	chunks := l.Chunks()
	if len(chunks) == 0 {
		return nil
	}
	return chunks[:len(chunks)-1]
}

// Sum returns the total of every gap and string width. With two or more
// courses it equals Params.Width up to floating-point error; a single course
// leaves Remaining unused.
func (l Layout) Sum() float64 {
	var sum float64
	for _, n := range l.lengths {
		sum += n
	}
	return sum
}

// InCourseGapUnused reports whether no course has more than one string, in
// which case the in-course gap has no effect.
func InCourseGapUnused(courses []Course) bool {
	for _, c := range courses {
		if len(c) > 1 {
			return false
		}
	}
	return true
}
