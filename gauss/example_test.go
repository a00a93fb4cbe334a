package gauss_test

import (
	"fmt"

	"github.com/lowfold/gaussviz/gauss"
)

// ExampleFuse demonstrates precision-weighted fusion of two beliefs.
func ExampleFuse() {
	prior, _ := gauss.NewLeaf(0, "Prior", 0, 1)
	likelihood, _ := gauss.NewLeaf(1, "Likelihood", 2, 1)

	mean, variance := gauss.Fuse([]gauss.Distribution{prior, likelihood})
	fmt.Printf("mean=%.2f variance=%.2f\n", mean, variance)

	// The narrower a belief, the harder it pulls the fused mean.
	sharp, _ := gauss.NewLeaf(2, "Sharp", 2, 0.5)
	mean, _ = gauss.Fuse([]gauss.Distribution{prior, sharp})
	fmt.Printf("mean=%.2f\n", mean)

	// Output:
	// mean=1.00 variance=0.50
	// mean=1.60
}

// ExampleDistribution_StdMarkers shows the seven σ-spaced guide positions.
func ExampleDistribution_StdMarkers() {
	d, _ := gauss.NewLeaf(0, "Wide", 5, 2)
	fmt.Println(d.StdMarkers())

	// Output:
	// [-1 1 3 5 7 9 11]
}
