package emu

import "github.com/lc3vm/lc3vm/insts"

// BranchUnit implements the LC-3's BR instruction. It does not update
// flags.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a BranchUnit connected to the given register
// file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// BR branches PC by inst's sign-extended 9-bit offset if COND holds one
// of the flags selected by inst's n (bit 11), z (bit 10) and p (bit 9)
// bits.
func (b *BranchUnit) BR(inst insts.Instruction) {
	nzp := inst.NZP()
	var mask uint16
	if nzp&0x4 != 0 {
		mask |= FlagNeg
	}
	if nzp&0x2 != 0 {
		mask |= FlagZro
	}
	if nzp&0x1 != 0 {
		mask |= FlagPos
	}
	if mask&b.regFile.COND() != 0 {
		b.regFile.SetPC(b.regFile.PC() + inst.Offset9())
	}
}
