package ioterm

import (
	"os"

	"golang.org/x/term"
)

// RawMode puts stdin into raw mode for the duration of emulation, so
// console input reaches GETC/IN a byte at a time instead of being
// line-buffered by the host terminal, and returns a function that
// restores the prior terminal state. enabled is false, with a no-op
// restore, when stdin is not a terminal (e.g. input piped from a
// file) — callers that need to warn about the cooked-mode fallback
// check enabled rather than err, since that path is not itself an
// error.
func RawMode() (restore func(), enabled bool, err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, false, err
	}

	return func() {
		_ = term.Restore(fd, oldState)
	}, true, nil
}
