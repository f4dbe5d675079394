package walk_test

import (
	"fmt"

	"github.com/halfint/spinnet/walk"
)

// ExampleWalk_Step shows the first split of a Hadamard walk on a cycle.
func ExampleWalk_Step() {
	w, _ := walk.New(5, walk.DefaultOptions())

	v, _ := w.InitialState(2)
	v, _ = w.Step(v)

	probs, _ := w.Distribution(v)
	for x, p := range probs {
		fmt.Printf("P(%d) = %.2f\n", x, p)
	}
	// Output:
	// P(0) = 0.00
	// P(1) = 0.50
	// P(2) = 0.00
	// P(3) = 0.50
	// P(4) = 0.00
}
