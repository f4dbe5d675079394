package operator_test

import (
	"fmt"

	"github.com/halfint/spinnet/hilbert"
	"github.com/halfint/spinnet/operator"
)

// ExampleFromMatrix shows the structural dispatch choosing the cheapest
// representation once, at construction.
func ExampleFromMatrix() {
	id, _ := operator.FromMatrix([][]complex128{
		{1, 0},
		{0, 1},
	})
	diag, _ := operator.FromMatrix([][]complex128{
		{2, 0},
		{0, 3},
	})
	dense, _ := operator.FromMatrix([][]complex128{
		{0, 1},
		{1, 0},
	})

	fmt.Println(id.Kind(), diag.Kind(), dense.Kind())
	// Output:
	// identity diagonal dense
}

// ExampleOperator_Compose demonstrates the fixed composition convention:
// a.Compose(b) applies b first.
func ExampleOperator_Compose() {
	x := operator.PauliX()
	z := operator.PauliZ()
	zero, _ := hilbert.BasisState(2, 0)

	xz, _ := x.Compose(z)
	out, _ := xz.Apply(zero)

	amps := out.Amplitudes()
	fmt.Printf("X·Z|0⟩ = (%.0f, %.0f)\n", real(amps[0]), real(amps[1]))
	// Output:
	// X·Z|0⟩ = (0, 1)
}
