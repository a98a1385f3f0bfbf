package spacing_test

import (
	"fmt"

	"github.com/brian-c/string-spacing-calculator/pkg/spacing"
)

func ExampleCalculate() {
	l := spacing.Calculate(spacing.Params{
		Width:       1.625,
		StartGap:    0.150,
		EndGap:      0.150,
		InCourseGap: 0.070,
	}, "49\n62\n84\n108")

	fmt.Println("courses:", len(l.Courses))
	fmt.Printf("between: %.4f\n", l.Between)
	for _, p := range l.Strings() {
		fmt.Printf("gap %.4f width %.4f\n", p.Gap, p.Width)
	}
	// Output:
	// courses: 4
	// between: 0.3407
	// gap 0.1500 width 0.1080
	// gap 0.3407 width 0.0840
	// gap 0.3407 width 0.0620
	// gap 0.3407 width 0.0490
}

func ExampleParseCourses() {
	courses := spacing.ParseCourses("10, abc, 20\n\n46")
	for _, c := range courses {
		fmt.Println(len(c), c)
	}
	// Output:
	// 1 [0.046]
	// 2 [0.01 0.02]
}
