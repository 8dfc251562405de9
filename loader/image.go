// Package loader provides LC-3 object file loading.
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Program represents a loaded LC-3 object file ready for execution.
type Program struct {
	// Origin is the address execution begins at and the first word is
	// loaded into.
	Origin uint16
	// Words holds the program's contents, to be written starting at
	// Origin.
	Words []uint16
}

// Load reads an LC-3 object file: a big-endian origin word followed by
// a big-endian stream of program words, continuing until EOF. This is
// the .obj format produced by the LC-3 assembler.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read parses an LC-3 object stream from r. Load is the usual entry
// point; Read is exposed directly for loading from an embedded or
// in-memory image.
func Read(r io.Reader) (*Program, error) {
	var originBuf [2]byte
	if _, err := io.ReadFull(r, originBuf[:]); err != nil {
		return nil, fmt.Errorf("failed to read image origin: %w", err)
	}
	prog := &Program{Origin: binary.BigEndian.Uint16(originBuf[:])}

	var wordBuf [2]byte
	for {
		_, err := io.ReadFull(r, wordBuf[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("image file ends mid-word")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read image word: %w", err)
		}
		if int(prog.Origin)+len(prog.Words)+1 > 0x10000 {
			return nil, fmt.Errorf("image overflows address 0xFFFF: malformed image")
		}
		prog.Words = append(prog.Words, binary.BigEndian.Uint16(wordBuf[:]))
	}

	return prog, nil
}
