package circuit_test

import (
	"testing"

	"github.com/katalvlaran/qlath/circuit"
	"github.com/katalvlaran/qlath/computer"
	"github.com/katalvlaran/qlath/gates"
)

var sinkCounts circuit.Counts

// BenchmarkSample100 measures 100 shots of Hadamard on four qubits.
func BenchmarkSample100(b *testing.B) {
	c, _ := circuit.New(4, 0)
	h, _ := gates.Hadamard(4)
	_ = c.Append(h)
	src := computer.WithRandomSource(computer.NewSeededSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkCounts, _ = c.Sample(100, src)
	}
}
