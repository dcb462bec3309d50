package report_test

import (
	"fmt"

	"github.com/katalvlaran/puzzletrace/report"
)

func ExampleSolve() {
	reports, err := report.Parse("7 6 4 2 1\n1 3 2 4 5\n1 2 7 8 9")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(report.Solve(reports, report.Strict).Safe)
	fmt.Println(report.Solve(reports, report.Tolerant).Safe)
	// Output:
	// 1
	// 2
}
