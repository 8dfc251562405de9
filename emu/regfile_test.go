package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lc3vm/lc3vm/emu"
)

var _ = Describe("RegFile", func() {
	var rf *emu.RegFile

	BeforeEach(func() {
		rf = emu.NewRegFile()
	})

	It("starts with PC at the conventional user program origin", func() {
		Expect(rf.PC()).To(Equal(uint16(0x3000)))
	})

	It("reads back a written general register", func() {
		rf.Write(3, 0x1234)
		Expect(rf.Read(3)).To(Equal(uint16(0x1234)))
	})

	It("wraps PC modulo 2^16 on SetPC", func() {
		rf.SetPC(0xFFFF)
		rf.SetPC(rf.PC() + 1)
		Expect(rf.PC()).To(Equal(uint16(0)))
	})

	Describe("UpdateFlags", func() {
		It("sets COND positive for a positive value", func() {
			rf.Write(0, 1)
			rf.UpdateFlags(0)
			Expect(rf.COND()).To(Equal(emu.FlagPos))
		})

		It("sets COND zero for a zero value", func() {
			rf.Write(0, 0)
			rf.UpdateFlags(0)
			Expect(rf.COND()).To(Equal(emu.FlagZro))
		})

		It("sets COND negative when bit 15 is set", func() {
			rf.Write(0, 0xFFFF)
			rf.UpdateFlags(0)
			Expect(rf.COND()).To(Equal(emu.FlagNeg))
		})
	})
})
