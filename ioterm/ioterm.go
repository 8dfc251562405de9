// Package ioterm wires the host terminal to the emulator's console
// trap routines and its memory-mapped keyboard.
//
// The LC-3 exposes two distinct views over the same keystroke stream:
// GETC/IN block until a byte arrives, while polling KBSR must never
// block. Both views are backed by a single background goroutine that
// reads the real input one byte at a time and publishes each byte on
// a depth-1 buffered channel; ReadByte (blocking) receives from it, Poll
// (non-blocking) selects on it without blocking.
package ioterm

import (
	"bufio"
	"io"
)

// Stream reads bytes from an underlying source on a background
// goroutine and exposes them through both a blocking ReadByte and a
// non-blocking Poll, so the emulator's trap routines and its
// keyboard-status MMIO can share one input without racing each
// other for bytes.
type Stream struct {
	bytes chan byte
}

// NewStream starts the background reader over r and returns a Stream
// ready for both blocking and non-blocking consumption. The goroutine
// exits once r returns an error (including io.EOF); after that,
// ReadByte and Poll behave as if input is permanently exhausted.
func NewStream(r io.Reader) *Stream {
	s := &Stream{bytes: make(chan byte, 1)}
	go s.pump(bufio.NewReader(r))
	return s
}

func (s *Stream) pump(r *bufio.Reader) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			close(s.bytes)
			return
		}
		s.bytes <- b
	}
}

// ReadByte blocks until a byte is available, satisfying emu.ByteReader
// for GETC and IN. It returns io.EOF once the underlying source is
// exhausted.
func (s *Stream) ReadByte() (byte, error) {
	b, ok := <-s.bytes
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// Poll reports whether a keystroke is available without blocking,
// consuming it if so, satisfying emu.KeyboardPoller for KBSR/KBDR.
func (s *Stream) Poll() (byte, bool) {
	select {
	case b, ok := <-s.bytes:
		return b, ok
	default:
		return 0, false
	}
}
