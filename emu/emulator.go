// Package emu provides a functional LC-3 emulator.
package emu

import (
	"io"
	"os"

	"github.com/lc3vm/lc3vm/insts"
)

// StepResult represents the outcome of executing a single instruction.
type StepResult struct {
	// Halted is true once TRAP HALT has executed. No other instruction
	// sets this.
	Halted bool

	// ExitCode is meaningful only when Halted is true.
	ExitCode int

	// PC is the address the executed instruction was fetched from.
	PC uint16

	// Op is the decoded opcode.
	Op insts.Op

	// TrapVector is meaningful only when Op is insts.OpTRAP.
	TrapVector uint16
}

// Emulator wires together the LC-3's register file, memory, and
// execution units into a fetch-decode-execute loop.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder

	alu     *ALU
	branch  *BranchUnit
	control *ControlUnit
	lsu     *LoadStoreUnit
	trap    *TrapUnit

	stdout io.Writer
	stdin  ByteReader

	instructionCount uint64
}

// EmulatorOption configures an Emulator at construction time.
type EmulatorOption func(*Emulator)

// WithStdout sets the writer traps write console output to. Defaults
// to os.Stdout.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.stdout = w
	}
}

// WithStdin sets the blocking byte source GETC and IN read from.
// Defaults to a reader that always returns io.EOF, so GETC/IN read as
// byte 0 unless a real input source is wired up.
func WithStdin(r ByteReader) EmulatorOption {
	return func(e *Emulator) {
		e.stdin = r
	}
}

// WithKeyboardPoller attaches the non-blocking poller consulted on
// every read of MMIOKeyboardStatus.
func WithKeyboardPoller(p KeyboardPoller) EmulatorOption {
	return func(e *Emulator) {
		e.memory.SetKeyboardPoller(p)
	}
}

// eofReader is the default stdin: every read fails with io.EOF, which
// TrapUnit treats as byte 0.
type eofReader struct{}

func (eofReader) ReadByte() (byte, error) { return 0, io.EOF }

// NewEmulator creates an Emulator with PC at the conventional user
// program origin (0x3000), zeroed registers and memory, and no
// keyboard poller attached.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	regFile := NewRegFile()
	memory := NewMemory()

	e := &Emulator{
		regFile: regFile,
		memory:  memory,
		decoder: insts.NewDecoder(),
		alu:     NewALU(regFile),
		branch:  NewBranchUnit(regFile),
		control: NewControlUnit(regFile),
		lsu:     NewLoadStoreUnit(regFile, memory),
		stdout:  os.Stdout,
		stdin:   eofReader{},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.trap = NewTrapUnit(regFile, memory, e.stdin, e.stdout)

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed so
// far.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadImage copies words into memory starting at origin, the layout
// produced by the loader package from an LC-3 object file, and sets PC
// to origin.
func (e *Emulator) LoadImage(origin uint16, words []uint16) {
	addr := origin
	for _, w := range words {
		e.memory.Write(addr, w)
		addr++
	}
	e.regFile.SetPC(origin)
}

// Step fetches, decodes, and executes one instruction. PC is
// incremented, modulo 2^16, immediately after fetch and before
// execution, per the LC-3's own fetch-decode-execute cycle — control
// transfers then overwrite it as their final effect.
func (e *Emulator) Step() StepResult {
	fetchPC := e.regFile.PC()
	word := e.memory.Read(fetchPC)
	e.regFile.SetPC(fetchPC + 1)

	inst := e.decoder.Decode(word)
	e.instructionCount++

	switch inst.Op {
	case insts.OpBR:
		e.branch.BR(inst)
	case insts.OpADD:
		e.alu.ADD(inst)
	case insts.OpLD:
		e.lsu.LD(inst)
	case insts.OpST:
		e.lsu.ST(inst)
	case insts.OpJSR:
		e.control.JSR(inst)
	case insts.OpAND:
		e.alu.AND(inst)
	case insts.OpLDR:
		e.lsu.LDR(inst)
	case insts.OpSTR:
		e.lsu.STR(inst)
	case insts.OpRTI, insts.OpRES:
		// Illegal in user mode; no-op, per the original LC-3 reference
		// behavior.
	case insts.OpNOT:
		e.alu.NOT(inst)
	case insts.OpLDI:
		e.lsu.LDI(inst)
	case insts.OpSTI:
		e.lsu.STI(inst)
	case insts.OpJMP:
		e.control.JMP(inst)
	case insts.OpLEA:
		e.lsu.LEA(inst)
	case insts.OpTRAP:
		halted, exitCode := e.trap.Dispatch(inst)
		if halted {
			return StepResult{Halted: true, ExitCode: exitCode, PC: fetchPC, Op: inst.Op, TrapVector: inst.TrapVector()}
		}
		return StepResult{PC: fetchPC, Op: inst.Op, TrapVector: inst.TrapVector()}
	}

	return StepResult{PC: fetchPC, Op: inst.Op}
}

// Run steps the emulator until TRAP HALT executes, returning its exit
// code. This is the only way the loop terminates.
func (e *Emulator) Run() int {
	for {
		result := e.Step()
		if result.Halted {
			return result.ExitCode
		}
	}
}
