// Package circuit records an ordered, size-checked gate program and executes it
// on a computer.QuantumComputer, once or for many shots.
//
// A Circuit fixes the register size and the classical basis state it starts
// from; Append accepts only whole-register gates of that size. Run performs
// initialize → apply… → collapse on a caller-supplied computer. Sample repeats
// the program on a fresh register and tallies outcomes into Counts, and
// GoodnessOfFit compares Counts with the exact distribution from Probabilities
// using a chi-square test (gonum/stat).
//
//	c, _ := circuit.New(2, 0)
//	h, _ := gates.Hadamard(2)
//	_ = c.Append(h)
//	counts, _ := c.Sample(1000, computer.WithRandomSource(computer.NewSeededSource(7)))
//	fmt.Println(counts.Bitstrings(2)) // map[00:… 01:… 10:… 11:…]
package circuit
