package emu

import (
	"fmt"
	"io"

	"github.com/lc3vm/lc3vm/insts"
)

// Trap vectors implementing console I/O, per the LC-3's standard trap
// table.
const (
	TrapGETC  uint16 = 0x20
	TrapOUT   uint16 = 0x21
	TrapPUTS  uint16 = 0x22
	TrapIN    uint16 = 0x23
	TrapPUTSP uint16 = 0x24
	TrapHALT  uint16 = 0x25
)

// ByteReader reads one byte at a time, blocking until one is
// available. GETC and IN share this blocking path; the non-blocking
// KBSR/KBDR poll (KeyboardPoller) is a separate, non-blocking view
// over the same underlying input stream that consumes a byte only when
// one is ready — see the ioterm package.
type ByteReader interface {
	ReadByte() (byte, error)
}

// TrapUnit implements the LC-3's trap dispatch and the six trap
// service routines.
type TrapUnit struct {
	regFile *RegFile
	memory  *Memory
	stdin   ByteReader
	stdout  io.Writer
}

// NewTrapUnit creates a TrapUnit wired to the given register file,
// memory, input source, and output sink.
func NewTrapUnit(regFile *RegFile, memory *Memory, stdin ByteReader, stdout io.Writer) *TrapUnit {
	return &TrapUnit{
		regFile: regFile,
		memory:  memory,
		stdin:   stdin,
		stdout:  stdout,
	}
}

// Dispatch saves the current PC into GR7, then executes the trap
// routine named by inst's low 8 bits. Unknown vectors are no-ops, per
// the spec's UnknownTrapVector handling. Halted is true only for
// TRAP HALT, in which case ExitCode is always 1.
func (t *TrapUnit) Dispatch(inst insts.Instruction) (halted bool, exitCode int) {
	t.regFile.Write(7, t.regFile.PC())

	switch inst.TrapVector() {
	case TrapGETC:
		t.getc()
	case TrapOUT:
		t.out()
	case TrapPUTS:
		t.puts()
	case TrapIN:
		t.in()
	case TrapPUTSP:
		t.putsp()
	case TrapHALT:
		t.trapHalt()
		return true, 1
	}
	return false, 0
}

// getc reads one byte from input into GR0, zero-extended, and
// updates flags from GR0.
func (t *TrapUnit) getc() {
	b, err := t.stdin.ReadByte()
	if err != nil {
		b = 0
	}
	t.regFile.Write(0, uint16(b))
	t.regFile.UpdateFlags(0)
}

// out writes the low byte of GR0 to output and flushes.
func (t *TrapUnit) out() {
	_, _ = t.stdout.Write([]byte{byte(t.regFile.Read(0))})
	t.flush()
}

// puts writes successive words' low bytes starting at mem[GR0] as
// characters until a zero word terminates.
func (t *TrapUnit) puts() {
	addr := t.regFile.Read(0)
	for {
		word := t.memory.Read(addr)
		if word == 0 {
			break
		}
		_, _ = t.stdout.Write([]byte{byte(word)})
		addr++
	}
	t.flush()
}

// in prompts, reads one byte, echoes it, stores it in GR0, and
// updates flags from GR0.
func (t *TrapUnit) in() {
	_, _ = io.WriteString(t.stdout, "Enter a character: ")
	t.flush()

	b, err := t.stdin.ReadByte()
	if err != nil {
		b = 0
	}
	_, _ = t.stdout.Write([]byte{b})
	t.regFile.Write(0, uint16(b))
	t.regFile.UpdateFlags(0)
	t.flush()
}

// putsp writes, for each word starting at mem[GR0], the low byte then
// the high byte, terminating as soon as either half is zero (so a
// word whose high byte is zero writes only its low byte).
func (t *TrapUnit) putsp() {
	addr := t.regFile.Read(0)
	for {
		word := t.memory.Read(addr)
		lo := byte(word & 0xFF)
		hi := byte(word >> 8)
		if lo == 0 {
			break
		}
		_, _ = t.stdout.Write([]byte{lo})
		if hi == 0 {
			break
		}
		_, _ = t.stdout.Write([]byte{hi})
		addr++
	}
	t.flush()
}

// trapHalt prints "HALT!" followed by a newline and flushes. The
// caller (Emulator.Step) is responsible for stopping the
// fetch-decode-execute loop and reporting the exit status.
func (t *TrapUnit) trapHalt() {
	_, _ = io.WriteString(t.stdout, "HALT!\n")
	t.flush()
}

func (t *TrapUnit) flush() {
	if f, ok := t.stdout.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// TrapName returns a human-readable name for a trap vector, used by
// CLI debug logging. Unknown vectors return "UNKNOWN(0xNN)", with the
// vector in hex.
func TrapName(vector uint16) string {
	switch vector {
	case TrapGETC:
		return "GETC"
	case TrapOUT:
		return "OUT"
	case TrapPUTS:
		return "PUTS"
	case TrapIN:
		return "IN"
	case TrapPUTSP:
		return "PUTSP"
	case TrapHALT:
		return "HALT"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", vector)
	}
}
