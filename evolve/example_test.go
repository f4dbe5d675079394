package evolve_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/halfint/spinnet/evolve"
	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
)

// ExampleEvolve drives a qubit through half a Rabi cycle under H = X.
func ExampleEvolve() {
	zero, _ := hilbert.BasisState(2, 0)

	out, _ := evolve.Evolve(operator.PauliX(), zero, math.Pi/2, nil)

	for i := 0; i < out.Dim(); i++ {
		a, _ := out.At(i)
		p := cmplx.Abs(a)
		fmt.Printf("P(%d) = %.4f\n", i, p*p)
	}
	// Output:
	// P(0) = 0.0000
	// P(1) = 1.0000
}
