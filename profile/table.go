package profile

import "github.com/lc3vm/lc3vm/insts"

// Table provides cycle-cost lookups for decoded instructions. It is
// read by cmd/lc3vm for an optional post-run summary only; the
// emulator itself never consults it.
type Table struct {
	config *Config
}

// NewTable creates a Table with DefaultConfig costs.
func NewTable() *Table {
	return &Table{config: DefaultConfig()}
}

// NewTableWithConfig creates a Table using the given Config.
func NewTableWithConfig(config *Config) *Table {
	return &Table{config: config}
}

// Cost returns the configured cycle cost for inst's opcode.
func (t *Table) Cost(inst insts.Instruction) uint64 {
	switch inst.Op {
	case insts.OpADD, insts.OpAND, insts.OpNOT:
		return t.config.ALULatency
	case insts.OpBR, insts.OpJMP, insts.OpJSR:
		return t.config.BranchLatency
	case insts.OpLD, insts.OpLDI, insts.OpLDR, insts.OpLEA:
		return t.config.LoadLatency
	case insts.OpST, insts.OpSTI, insts.OpSTR:
		return t.config.StoreLatency
	case insts.OpTRAP:
		return t.config.TrapLatency
	default:
		return 1
	}
}

// Config returns the table's underlying cost configuration.
func (t *Table) Config() *Config {
	return t.config
}
