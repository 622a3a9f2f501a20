package gates_test

import (
	"fmt"

	"github.com/katalvlaran/qlath/cnum"
	"github.com/katalvlaran/qlath/gates"
)

// ExampleHadamard puts one qubit into an equal superposition.
func ExampleHadamard() {
	h, _ := gates.Hadamard(1)
	out, _ := h.Apply([]cnum.Complex{cnum.One, cnum.Zero})
	fmt.Printf("%s p0=%.2f p1=%.2f\n", h, out[0].Abs2(), out[1].Abs2())
	// Output:
	// H[1] p0=0.50 p1=0.50
}
