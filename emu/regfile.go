// Package emu provides a functional LC-3 emulator.
package emu

// Register indices into RegFile's backing array. 0..7 are general
// purpose; PC and COND are exposed through named accessors but live in the
// same 10-word backing store so that index-based access (decoded
// straight out of an instruction's operand fields) and named access
// share one representation, per the LC-3's own register layout.
const (
	NumGeneralRegs = 8
	regPC          = 8
	regCOND        = 9
	numRegs        = 10
)

// Condition flags. Exactly one is set in COND at any time after the
// first flag-updating instruction executes. One-hot rather than three
// booleans so that BR can test its selected flags with one AND against
// COND.
const (
	FlagNeg uint16 = 1 << 0
	FlagZro uint16 = 1 << 1
	FlagPos uint16 = 1 << 2
)

// RegFile represents the LC-3 register file: GR0..GR7, PC, and COND.
type RegFile struct {
	// reg holds all 10 registers: indices 0..7 are GR0..GR7, index 8
	// is PC, index 9 is COND.
	reg [numRegs]uint16
}

// NewRegFile creates a register file with PC set to the conventional
// user-program origin and everything else zeroed.
func NewRegFile() *RegFile {
	rf := &RegFile{}
	rf.reg[regPC] = 0x3000
	return rf
}

// Read returns the value of the general-purpose register at index
// 0..7.
func (r *RegFile) Read(index uint16) uint16 {
	return r.reg[index]
}

// Write stores value into the general-purpose register at index
// 0..7.
func (r *RegFile) Write(index uint16, value uint16) {
	r.reg[index] = value
}

// PC returns the program counter.
func (r *RegFile) PC() uint16 {
	return r.reg[regPC]
}

// SetPC sets the program counter. Arithmetic on PC wraps modulo
// 2^16 by construction, since it is stored in a uint16.
func (r *RegFile) SetPC(value uint16) {
	r.reg[regPC] = value
}

// COND returns the condition register, one of FlagNeg, FlagZro,
// FlagPos.
func (r *RegFile) COND() uint16 {
	return r.reg[regCOND]
}

// UpdateFlags sets COND from the sign of the value just written to
// the general-purpose register at index, per the one-hot encoding:
// negative if bit 15 is set, zero if the register is zero, otherwise
// positive.
func (r *RegFile) UpdateFlags(index uint16) {
	value := r.reg[index]
	switch {
	case value == 0:
		r.reg[regCOND] = FlagZro
	case value>>15 == 1:
		r.reg[regCOND] = FlagNeg
	default:
		r.reg[regCOND] = FlagPos
	}
}
