package hilbert_test

import (
	"fmt"

	"github.com/halfint/spinnet/hilbert"
)

// ExampleStateVector_TensorProduct builds the Bell state (|00⟩+|11⟩)/√2
// from computational basis vectors and verifies its norm.
func ExampleStateVector_TensorProduct() {
	up, _ := hilbert.BasisState(2, 0)
	down, _ := hilbert.BasisState(2, 1)

	zz, err := up.TensorProduct(up).Add(down.TensorProduct(down))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	bell, _ := zz.Normalize()

	fmt.Printf("dim=%d norm=%.4f\n", bell.Dim(), bell.Norm())
	// Output:
	// dim=4 norm=1.0000
}

// ExampleShape_FlatIndex shows the shared row-major flattening convention.
func ExampleShape_FlatIndex() {
	s := hilbert.Shape{2, 3}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			flat, _ := s.FlatIndex([]int{i, j})
			fmt.Printf("(%d,%d)->%d ", i, j, flat)
		}
	}
	fmt.Println()
	// Output:
	// (0,0)->0 (0,1)->1 (0,2)->2 (1,0)->3 (1,1)->4 (1,2)->5
}
