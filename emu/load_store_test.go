package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lc3vm/lc3vm/emu"
	"github.com/lc3vm/lc3vm/insts"
)

var _ = Describe("LoadStoreUnit", func() {
	var (
		rf  *emu.RegFile
		mem *emu.Memory
		lsu *emu.LoadStoreUnit
		dec *insts.Decoder
	)

	BeforeEach(func() {
		rf = emu.NewRegFile()
		mem = emu.NewMemory()
		lsu = emu.NewLoadStoreUnit(rf, mem)
		dec = insts.NewDecoder()
		rf.SetPC(0x3000)
	})

	Describe("LD", func() {
		It("loads mem[PC+offset9] and updates flags", func() {
			mem.Write(0x3002, 0x1234)
			inst := dec.Decode(0x2002) // LD R0, #2
			lsu.LD(inst)
			Expect(rf.Read(0)).To(Equal(uint16(0x1234)))
			Expect(rf.COND()).To(Equal(emu.FlagPos))
		})
	})

	Describe("LDI", func() {
		It("loads mem[mem[PC+offset9]] and updates flags", func() {
			mem.Write(0x3002, 0x4000)
			mem.Write(0x4000, 0x1234)
			inst := dec.Decode(0xA002) // LDI R0, #2
			lsu.LDI(inst)
			Expect(rf.Read(0)).To(Equal(uint16(0x1234)))
			Expect(rf.COND()).To(Equal(emu.FlagPos))
		})
	})

	Describe("LDR", func() {
		It("loads mem[BaseR+offset6] and updates flags", func() {
			rf.Write(1, 0x4000)
			mem.Write(0x4002, 0x5678)
			inst := dec.Decode(0x6042) // LDR R0, R1, #2
			lsu.LDR(inst)
			Expect(rf.Read(0)).To(Equal(uint16(0x5678)))
		})
	})

	Describe("LEA", func() {
		It("loads PC+offset9 without touching memory", func() {
			inst := dec.Decode(0xE002) // LEA R0, #2
			lsu.LEA(inst)
			Expect(rf.Read(0)).To(Equal(uint16(0x3002)))
			Expect(rf.COND()).To(Equal(emu.FlagPos))
			Expect(mem.Read(0x3002)).To(Equal(uint16(0)))
		})
	})

	Describe("ST", func() {
		It("stores SR into mem[PC+offset9] without updating flags", func() {
			rf.Write(0, 0x99)
			rf.UpdateFlags(0)
			before := rf.COND()
			inst := dec.Decode(0x3002) // ST R0, #2
			lsu.ST(inst)
			Expect(mem.Read(0x3002)).To(Equal(uint16(0x99)))
			Expect(rf.COND()).To(Equal(before))
		})
	})

	Describe("STI", func() {
		It("stores SR into mem[mem[PC+offset9]]", func() {
			rf.Write(0, 0x99)
			mem.Write(0x3002, 0x4000)
			inst := dec.Decode(0xB002) // STI R0, #2
			lsu.STI(inst)
			Expect(mem.Read(0x4000)).To(Equal(uint16(0x99)))
		})
	})

	Describe("STR", func() {
		It("stores SR into mem[BaseR+offset6]", func() {
			rf.Write(0, 0x99)
			rf.Write(1, 0x4000)
			inst := dec.Decode(0x7042) // STR R0, R1, #2
			lsu.STR(inst)
			Expect(mem.Read(0x4002)).To(Equal(uint16(0x99)))
		})
	})
})
