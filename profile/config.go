// Package profile provides a configurable per-opcode cycle-cost table
// for instrumentation. It is purely observational: nothing in the emu
// package reads from it, and attaching or swapping a Config never
// changes an emulator's register, memory, or exit-code behavior.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds a cycle cost per LC-3 opcode class. Values are
// illustrative rather than measured against real hardware, since the
// LC-3 has no physical implementation to calibrate against.
type Config struct {
	// ALULatency is the cost attributed to ADD, AND, NOT.
	ALULatency uint64 `json:"alu_latency"`

	// BranchLatency is the cost attributed to BR, JMP, JSR/JSRR.
	BranchLatency uint64 `json:"branch_latency"`

	// LoadLatency is the cost attributed to LD, LDI, LDR, LEA.
	LoadLatency uint64 `json:"load_latency"`

	// StoreLatency is the cost attributed to ST, STI, STR.
	StoreLatency uint64 `json:"store_latency"`

	// TrapLatency is the cost attributed to TRAP, before the routine's
	// own I/O cost.
	TrapLatency uint64 `json:"trap_latency"`
}

// DefaultConfig returns a Config with uniform, deliberately
// unremarkable costs — there is no reference hardware timing to
// model, so the defaults exist only to give every opcode class a
// value.
func DefaultConfig() *Config {
	return &Config{
		ALULatency:    1,
		BranchLatency: 1,
		LoadLatency:   1,
		StoreLatency:  1,
		TrapLatency:   1,
	}
}

// LoadConfig reads a Config from a JSON file, starting from
// DefaultConfig so that a partial file only overrides the fields it
// names.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse profile config: %w", err)
	}

	return config, nil
}

// SaveConfig writes c to path as indented JSON.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile config file: %w", err)
	}

	return nil
}
