// Package insts provides LC-3 instruction definitions and decoding.
//
// This package implements decoding of LC-3 machine words into a
// structured Instruction. It supports all 15 defined opcodes:
//   - ALU: ADD, AND, NOT
//   - Memory: LD, LDI, LDR, LEA, ST, STI, STR
//   - Control transfer: BR, JSR/JSRR, JMP/RET
//   - TRAP, plus the illegal RTI/reserved encodings
//
// Usage:
//
//	dec := insts.NewDecoder()
//	inst := dec.Decode(0x1021) // ADD R0, R0, #1
//	fmt.Printf("Op: %v, DR: %d, Imm5: %d\n", inst.Op, inst.DR(), inst.Imm5())
package insts
