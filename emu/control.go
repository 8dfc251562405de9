package emu

import "github.com/lc3vm/lc3vm/insts"

// ControlUnit implements the LC-3's unconditional control-transfer
// instructions: JSR/JSRR and JMP/RET. None of these update flags.
type ControlUnit struct {
	regFile *RegFile
}

// NewControlUnit creates a ControlUnit connected to the given
// register file.
func NewControlUnit(regFile *RegFile) *ControlUnit {
	return &ControlUnit{regFile: regFile}
}

// JSR saves the current PC into GR7, then branches: to reg[BaseR]
// (JSRR, bit 11 clear) or to PC + sign-extended 11-bit offset (JSR,
// bit 11 set).
func (c *ControlUnit) JSR(inst insts.Instruction) {
	c.regFile.Write(7, c.regFile.PC())
	if inst.JSRFlag() {
		c.regFile.SetPC(c.regFile.PC() + inst.Offset11())
	} else {
		c.regFile.SetPC(c.regFile.Read(inst.BaseR()))
	}
}

// JMP sets PC to reg[BaseR]. RET is the special case BaseR == 7; no
// separate handling is needed since it falls out of the same field.
func (c *ControlUnit) JMP(inst insts.Instruction) {
	c.regFile.SetPC(c.regFile.Read(inst.BaseR()))
}
