package emu_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lc3vm/lc3vm/emu"
)

var _ = Describe("Emulator", func() {
	var (
		e   *emu.Emulator
		out *bytes.Buffer
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		e = emu.NewEmulator(emu.WithStdout(out))
	})

	It("starts with PC at 0x3000 and all registers zero", func() {
		Expect(e.RegFile().PC()).To(Equal(uint16(0x3000)))
		Expect(e.RegFile().Read(0)).To(Equal(uint16(0)))
	})

	Describe("scenario: ADD immediate, positive", func() {
		It("computes GR0=1, COND=positive, PC=0x3001", func() {
			e.Memory().Write(0x3000, 0x1021) // ADD R0, R0, #1
			e.Step()
			Expect(e.RegFile().Read(0)).To(Equal(uint16(1)))
			Expect(e.RegFile().COND()).To(Equal(emu.FlagPos))
			Expect(e.RegFile().PC()).To(Equal(uint16(0x3001)))
		})
	})

	Describe("scenario: ADD immediate, negative", func() {
		It("computes GR0=0xFFFF, COND=negative", func() {
			e.Memory().Write(0x3000, 0x103F) // ADD R0, R0, #-1
			e.Step()
			Expect(e.RegFile().Read(0)).To(Equal(uint16(0xFFFF)))
			Expect(e.RegFile().COND()).To(Equal(emu.FlagNeg))
		})
	})

	Describe("scenario: LEA then PUTS prints HI", func() {
		It("outputs HI", func() {
			e.Memory().Write(0x3000, 0xE002) // LEA R0, #2
			e.Memory().Write(0x3001, 0xF022) // TRAP PUTS
			e.Memory().Write(0x3003, 0x0048) // 'H'
			e.Memory().Write(0x3004, 0x0049) // 'I'
			e.Memory().Write(0x3005, 0x0000)

			e.Step()
			e.Step()
			Expect(out.String()).To(Equal("HI"))
		})
	})

	Describe("scenario: BR taken", func() {
		It("jumps PC forward by the offset when COND matches", func() {
			e.Memory().Write(0x3000, 0x1021) // ADD R0, R0, #1 -> COND=positive
			e.Memory().Write(0x3001, 0x0201) // BRp #1
			e.Step()
			e.Step()
			Expect(e.RegFile().PC()).To(Equal(uint16(0x3003)))
		})
	})

	Describe("scenario: LDI indirect", func() {
		It("loads through the indirect pointer and sets COND", func() {
			e.Memory().Write(0x3000, 0xA001) // LDI R0, #1
			e.Memory().Write(0x3002, 0x4000)
			e.Memory().Write(0x4000, 0x1234)
			e.Step()
			Expect(e.RegFile().Read(0)).To(Equal(uint16(0x1234)))
			Expect(e.RegFile().COND()).To(Equal(emu.FlagPos))
		})
	})

	Describe("scenario: HALT", func() {
		It("prints HALT! and exits with code 1", func() {
			e.Memory().Write(0x3000, 0xF025) // TRAP HALT
			exitCode := e.Run()
			Expect(exitCode).To(Equal(1))
			Expect(out.String()).To(Equal("HALT!\n"))
		})
	})

	Describe("boundary: JSR offsets", func() {
		It("jumps forward by the max positive 11-bit offset", func() {
			e.RegFile().SetPC(0x3000)
			e.Memory().Write(0x3000, 0x4BFF) // JSR #0x3FF
			e.Step()
			Expect(e.RegFile().PC()).To(Equal(uint16(0x3001 + 1023)))
		})

		It("jumps backward by 1024 when the sign bit is set", func() {
			e.RegFile().SetPC(0x3000)
			e.Memory().Write(0x3000, 0x4C00) // JSR #0x400
			e.Step()
			Expect(e.RegFile().PC()).To(Equal(uint16(0x3001 - 1024)))
		})
	})

	Describe("boundary: ADD to zero", func() {
		It("sets COND zero", func() {
			e.RegFile().Write(1, 1)
			e.Memory().Write(0x3000, 0x107F) // ADD R0, R1, #-1
			e.Step()
			Expect(e.RegFile().Read(0)).To(Equal(uint16(0)))
			Expect(e.RegFile().COND()).To(Equal(emu.FlagZro))
		})
	})

	Describe("boundary: NOT of zero", func() {
		It("yields 0xFFFF with COND negative", func() {
			e.Memory().Write(0x3000, 0x907F) // NOT R0, R1 (R1 is zero)
			e.Step()
			Expect(e.RegFile().Read(0)).To(Equal(uint16(0xFFFF)))
			Expect(e.RegFile().COND()).To(Equal(emu.FlagNeg))
		})
	})

	Describe("boundary: PUTSP terminating on a high-byte-zero word", func() {
		It("writes only the low byte of the final word", func() {
			e.RegFile().Write(0, 0x4000)
			e.Memory().Write(0x4000, 0x4241) // 'A','B'
			e.Memory().Write(0x4001, 0x0043) // high byte zero, low byte 'C'
			e.Memory().Write(0x3000, 0xF024) // TRAP PUTSP
			e.Step()
			Expect(out.String()).To(Equal("ABC"))
		})
	})

	Describe("image round trip", func() {
		It("writes words starting at origin and sets PC to origin", func() {
			e.LoadImage(0x4000, []uint16{0x1021, 0xF025})
			Expect(e.RegFile().PC()).To(Equal(uint16(0x4000)))
			Expect(e.Memory().Read(0x4000)).To(Equal(uint16(0x1021)))
			Expect(e.Memory().Read(0x4001)).To(Equal(uint16(0xF025)))
		})
	})

	Describe("RTI and reserved opcodes", func() {
		It("are no-ops that still advance PC", func() {
			e.Memory().Write(0x3000, 0x8000) // RTI
			e.Step()
			Expect(e.RegFile().PC()).To(Equal(uint16(0x3001)))
		})
	})

	Describe("console input", func() {
		It("feeds GETC from the configured stdin", func() {
			e2 := emu.NewEmulator(
				emu.WithStdout(out),
				emu.WithStdin(&scriptedReader{bytes: []byte{'Q'}}),
			)
			e2.Memory().Write(0x3000, 0xF020) // TRAP GETC
			e2.Step()
			Expect(e2.RegFile().Read(0)).To(Equal(uint16('Q')))
		})
	})
})
