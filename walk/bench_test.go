package walk_test

import (
	"testing"

	"github.com/halfint/spinnet/walk"
)

// BenchmarkStep_Cycle32 measures one dense step on a 32-site cycle
// (dim 64).
func BenchmarkStep_Cycle32(b *testing.B) {
	w, err := walk.New(32, walk.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	v, err := w.SymmetricState(16)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := w.Step(v)
		if err != nil {
			b.Fatal(err)
		}
		v = out
	}
}
