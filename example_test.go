package ckmeans_test

import (
	"fmt"

	"github.com/yyyoichi/ckmeans"
)

func ExampleCluster() {
	data := []float64{1, 2, 3, 4, 100, 101, 102, 103}
	groups, err := ckmeans.Cluster(data, 2)
	if err != nil {
		fmt.Printf("Error clustering: %v\n", err)
		return
	}
	fmt.Println(groups)

	// Output:
	// [[1 2 3 4] [100 101 102 103]]
}

func ExampleBreaks() {
	data := []float64{1, 2, 3, 10, 11, 12}

	decimal, _ := ckmeans.Breaks(data, 2)
	nice, _ := ckmeans.Breaks(data, 2, ckmeans.WithRoundLadder(ckmeans.LadderNice))
	fmt.Println(decimal, nice)

	// Output:
	// [7] [5]
}

func ExampleAnalyze() {
	// Median household incomes of a handful of districts, in thousands.
	incomes := []float64{31.2, 58.9, 33.5, 61.4, 97.0, 29.8, 102.3, 57.1}

	r, err := ckmeans.Analyze(incomes, 3)
	if err != nil {
		fmt.Printf("Error analyzing: %v\n", err)
		return
	}
	for g := range r.K() {
		fmt.Printf("class %d: %v\n", g, r.Groups[g])
	}
	fmt.Println("raw breaks:", r.RawBreaks)
	fmt.Println("round breaks:", r.RoundBreaks)
	fmt.Println("labels:", r.Labels)
	fmt.Println("class of 75:", r.Classify(75))

	// Output:
	// class 0: [29.8 31.2 33.5]
	// class 1: [57.1 58.9 61.4]
	// class 2: [97 102.3]
	// raw breaks: [45.3 79.2]
	// round breaks: [50 80]
	// labels: [0 1 0 1 2 0 2 1]
	// class of 75: 1
}

func ExampleValidate() {
	err := ckmeans.Validate([]float64{1, 2, 3}, 5)
	fmt.Println(err)

	// Output:
	// invalid cluster count: number of clusters (5) cannot exceed the number of data points (3)
}
