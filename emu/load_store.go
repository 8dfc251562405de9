package emu

import "github.com/lc3vm/lc3vm/insts"

// LoadStoreUnit implements the LC-3's memory instructions: LD, LDI,
// LDR, LEA, ST, STI, STR. PC-relative forms use the already
// post-incremented PC (the address of the instruction following the
// one being executed), per the driver loop's fetch-then-increment
// order.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

// LD: reg[DR] = mem[PC + off9]. Updates flags.
func (lsu *LoadStoreUnit) LD(inst insts.Instruction) {
	dr := inst.DR()
	addr := lsu.regFile.PC() + inst.Offset9()
	lsu.regFile.Write(dr, lsu.memory.Read(addr))
	lsu.regFile.UpdateFlags(dr)
}

// LDI: reg[DR] = mem[mem[PC + off9]]. Updates flags.
func (lsu *LoadStoreUnit) LDI(inst insts.Instruction) {
	dr := inst.DR()
	addr := lsu.regFile.PC() + inst.Offset9()
	indirect := lsu.memory.Read(addr)
	lsu.regFile.Write(dr, lsu.memory.Read(indirect))
	lsu.regFile.UpdateFlags(dr)
}

// LDR: reg[DR] = mem[reg[BaseR] + off6]. Updates flags.
func (lsu *LoadStoreUnit) LDR(inst insts.Instruction) {
	dr := inst.DR()
	addr := lsu.regFile.Read(inst.BaseR()) + inst.Offset6()
	lsu.regFile.Write(dr, lsu.memory.Read(addr))
	lsu.regFile.UpdateFlags(dr)
}

// LEA: reg[DR] = PC + off9. No memory access. Updates flags.
func (lsu *LoadStoreUnit) LEA(inst insts.Instruction) {
	dr := inst.DR()
	addr := lsu.regFile.PC() + inst.Offset9()
	lsu.regFile.Write(dr, addr)
	lsu.regFile.UpdateFlags(dr)
}

// ST: mem[PC + off9] = reg[SR]. Does not update flags.
func (lsu *LoadStoreUnit) ST(inst insts.Instruction) {
	addr := lsu.regFile.PC() + inst.Offset9()
	lsu.memory.Write(addr, lsu.regFile.Read(inst.SR()))
}

// STI: mem[mem[PC + off9]] = reg[SR]. Does not update flags.
func (lsu *LoadStoreUnit) STI(inst insts.Instruction) {
	addr := lsu.regFile.PC() + inst.Offset9()
	indirect := lsu.memory.Read(addr)
	lsu.memory.Write(indirect, lsu.regFile.Read(inst.SR()))
}

// STR: mem[reg[BaseR] + off6] = reg[SR]. Does not update flags.
func (lsu *LoadStoreUnit) STR(inst insts.Instruction) {
	addr := lsu.regFile.Read(inst.BaseR()) + inst.Offset6()
	lsu.memory.Write(addr, lsu.regFile.Read(inst.SR()))
}
