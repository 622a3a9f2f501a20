package computer

// State is the lifecycle position of a QuantumComputer.
type State int

const (
	// Uninitialized: amplitudes are all zero; only Initialize is valid.
	Uninitialized State = iota

	// Initialized: amplitudes hold a normalized state; Apply and Collapse are valid.
	Initialized

	// Collapsed: a value has been measured; the register is fixed for reads.
	Collapsed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Collapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}
