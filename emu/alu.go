package emu

import "github.com/lc3vm/lc3vm/insts"

// ALU implements the LC-3's arithmetic and logic instructions: ADD,
// AND, NOT. All three write their destination register and then
// update COND from it.
type ALU struct {
	regFile *RegFile
}

// NewALU creates an ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// operand2 resolves the second ADD/AND operand: SR2's value in
// register mode, or the sign-extended 5-bit immediate in immediate
// mode.
func (a *ALU) operand2(inst insts.Instruction) uint16 {
	if inst.ImmFlag() {
		return inst.Imm5()
	}
	return a.regFile.Read(inst.SR2())
}

// ADD computes reg[DR] = reg[SR1] + operand2, modulo 2^16, and
// updates flags from DR.
func (a *ALU) ADD(inst insts.Instruction) {
	dr := inst.DR()
	result := a.regFile.Read(inst.SR1()) + a.operand2(inst)
	a.regFile.Write(dr, result)
	a.regFile.UpdateFlags(dr)
}

// AND computes reg[DR] = reg[SR1] & operand2 and updates flags from
// DR.
func (a *ALU) AND(inst insts.Instruction) {
	dr := inst.DR()
	result := a.regFile.Read(inst.SR1()) & a.operand2(inst)
	a.regFile.Write(dr, result)
	a.regFile.UpdateFlags(dr)
}

// NOT computes reg[DR] = ^reg[SR1] and updates flags from DR.
func (a *ALU) NOT(inst insts.Instruction) {
	dr := inst.DR()
	result := ^a.regFile.Read(inst.SR1())
	a.regFile.Write(dr, result)
	a.regFile.UpdateFlags(dr)
}
