package emu

// Memory-mapped I/O addresses.
const (
	// MMIOKeyboardStatus (KBSR) has its high bit set when a keystroke
	// is available.
	MMIOKeyboardStatus uint16 = 0xFE00
	// MMIOKeyboardData (KBDR) holds the most recently polled
	// keystroke, zero-extended, in its low byte.
	MMIOKeyboardData uint16 = 0xFE02

	kbsrReady uint16 = 0x8000
)

// KeyboardPoller reports whether a keystroke is available without
// blocking, and if so consumes and returns exactly one byte. It backs
// the side effect that Memory.Read triggers on every read of
// MMIOKeyboardStatus. A nil poller makes KBSR always report "no key
// available" — the correct behavior when no input channel is wired
// up (e.g. in most unit tests).
type KeyboardPoller interface {
	// Poll returns (byte, true) if a keystroke is available, having
	// consumed it; otherwise (0, false). Must not block.
	Poll() (byte, bool)
}

// Memory is the LC-3's flat 65,536-word address space, plus the
// keyboard MMIO side effect on address 0xFE00.
type Memory struct {
	cells  [1 << 16]uint16
	poller KeyboardPoller
}

// NewMemory creates a zeroed memory with no keyboard poller attached.
func NewMemory() *Memory {
	return &Memory{}
}

// SetKeyboardPoller attaches the poller consulted on every read of
// MMIOKeyboardStatus.
func (m *Memory) SetKeyboardPoller(p KeyboardPoller) {
	m.poller = p
}

// Read returns the word at address. Reading MMIOKeyboardStatus polls
// the attached KeyboardPoller first: if a key is available, it is
// written into MMIOKeyboardData and MMIOKeyboardStatus is set ready;
// otherwise MMIOKeyboardStatus is cleared. This side effect occurs on
// every read of 0xFE00 and nowhere else.
func (m *Memory) Read(address uint16) uint16 {
	if address == MMIOKeyboardStatus {
		if m.poller != nil {
			if b, ok := m.poller.Poll(); ok {
				m.cells[MMIOKeyboardStatus] = kbsrReady
				m.cells[MMIOKeyboardData] = uint16(b)
			} else {
				m.cells[MMIOKeyboardStatus] = 0
			}
		} else {
			m.cells[MMIOKeyboardStatus] = 0
		}
	}
	return m.cells[address]
}

// Write unconditionally stores value at address. Writes to the
// keyboard MMIO addresses are permitted but semantically meaningless:
// the next polling Read of MMIOKeyboardStatus overwrites them.
func (m *Memory) Write(address uint16, value uint16) {
	m.cells[address] = value
}
