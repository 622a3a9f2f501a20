// SPDX-License-Identifier: MIT

package computer

import (
	"errors"

	"github.com/katalvlaran/qlath/gate"
)

var (
	// ErrInvalidBasisState indicates an Initialize value outside [0, 2ⁿ).
	ErrInvalidBasisState = errors.New("computer: basis state out of range")

	// ErrInvalidState indicates an operation invoked from the wrong lifecycle
	// state, e.g. Collapse before Initialize or Apply after Collapse.
	ErrInvalidState = errors.New("computer: invalid state for operation")

	// ErrNotYetMeasured indicates Value was read before Collapse.
	ErrNotYetMeasured = errors.New("computer: not yet measured")

	// ErrNotNormalized indicates that a gate produced a state whose total
	// probability drifted from 1 by more than the configured tolerance,
	// i.e. the gate was not unitary.
	ErrNotNormalized = errors.New("computer: state is not normalized")

	// ErrRandomRange indicates that the RandomSource returned a value outside [0, 1).
	ErrRandomRange = errors.New("computer: random source out of range")

	// ErrGateSizeMismatch indicates a gate whose qubit count differs from the
	// register's. It is the same sentinel as gate.ErrGateSizeMismatch.
	ErrGateSizeMismatch = gate.ErrGateSizeMismatch

	// ErrInvalidQubits indicates a register size < 1. Same sentinel as gate.ErrInvalidQubits.
	ErrInvalidQubits = gate.ErrInvalidQubits

	// ErrTooManyQubits indicates a register larger than MaxQubits.
	ErrTooManyQubits = errors.New("computer: too many qubits")

	// ErrNilComputer indicates that a nil *QuantumComputer was passed in.
	ErrNilComputer = errors.New("computer: nil computer")
)
