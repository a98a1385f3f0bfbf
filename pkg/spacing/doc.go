// Package spacing computes string spacing layouts for fretted instruments.
//
// # Overview
//
// Given the width of a nut or saddle, the gaps left at either edge, the gap
// between strings of the same course and the gauge of every string, the
// calculator places each string so that gauges are accounted for and the
// remaining space is shared evenly between courses.
//
// A course is one or more strings played together (a doubled mandolin pair
// is one course with two strings). Gauges and gaps are entered in thou
// (thousandths of an inch) and handled internally in inches.
//
// # Configuration Text
//
// Courses are described as text, one course per line, with comma-separated
// gauges:
//
//	11, 11
//	15, 15
//	26, 26
//	40, 40
//
// [ParseCourses] trims lines, drops blank ones and reverses the result, so
// the first line becomes the rightmost course of the diagram. Tokens that are
// not numbers are dropped silently.
//
// # Layout
//
// [Compute] lays out the courses left to right:
//
//	StartGap, course₀, Between, course₁, …, Between, courseₙ, EndGap
//
// where each course expands to its strings separated by the in-course gap.
// [Layout.Chunks] pairs that sequence into (gap before, width) placements;
// the final chunk is the end gap followed by a zero-width terminal string.
//
// Basic usage:
//
//	l := spacing.Calculate(spacing.Params{
//	    Width:       1.625,
//	    StartGap:    0.150,
//	    EndGap:      0.150,
//	    InCourseGap: 0.070,
//	}, "49\n62\n84\n108")
//	for _, p := range l.Strings() {
//	    fmt.Printf("gap %.4f width %.4f\n", p.Gap, p.Width)
//	}
//
// # Edge Cases
//
//   - No courses: [Layout.Empty] reports true and there is nothing to draw.
//   - One course: there are no gaps between courses, so [Layout.Between] is 0.
//   - Over-full configurations (strings wider than the width allows) yield a
//     negative [Layout.Remaining] and overlapping strings. This is not an
//     error; [Layout.Overfull] reports it.
package spacing
