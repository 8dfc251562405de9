// Command lc3vm runs LC-3 object files to completion.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lc3vm/lc3vm/emu"
	"github.com/lc3vm/lc3vm/insts"
	"github.com/lc3vm/lc3vm/ioterm"
	"github.com/lc3vm/lc3vm/loader"
	"github.com/lc3vm/lc3vm/profile"
)

var (
	verbose    bool
	profileIn  string
	profileOut string
	noRaw      bool
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		return 1
	}
	return exitCode
}

// exitCode is set by runEmulator and read back by run after
// root.Execute returns, since cobra's RunE signature has no room for
// a process exit status of its own.
var exitCode int

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lc3vm <image-file>",
		Short: "Run an LC-3 object file to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			code, err := runEmulator(args[0])
			exitCode = code
			return err
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&profileIn, "profile", "", "path to a cycle-cost profile config (JSON)")
	cmd.Flags().StringVar(&profileOut, "profile-out", "", "write per-opcode cycle totals to this path on halt")
	cmd.Flags().BoolVar(&noRaw, "no-raw", false, "skip raw terminal mode setup")

	return cmd
}

func runEmulator(imagePath string) (int, error) {
	logger := newLogger(os.Stderr, verbose)

	prog, err := loader.Load(imagePath)
	if err != nil {
		return 1, fmt.Errorf("failed to load image: %w", err)
	}
	logger.Debug("loaded image", "path", imagePath, "origin", fmt.Sprintf("0x%04X", prog.Origin), "words", len(prog.Words))

	table, err := newProfileTable(logger)
	if err != nil {
		return 1, err
	}

	restore := func() {}
	if !noRaw {
		var enabled bool
		restore, enabled, err = ioterm.RawMode()
		if err != nil {
			logger.Warn("failed to enable raw terminal mode, continuing in cooked mode", "error", err)
			restore = func() {}
		} else if !enabled {
			logger.Warn("stdin is not a terminal, continuing in cooked mode")
		}
	}
	defer restore()

	stream := ioterm.NewStream(os.Stdin)
	emulator := emu.NewEmulator(
		emu.WithStdout(os.Stdout),
		emu.WithStdin(stream),
		emu.WithKeyboardPoller(stream),
	)
	emulator.LoadImage(prog.Origin, prog.Words)

	counts := make(map[insts.Op]uint64)
	var code int
	for {
		result := emulator.Step()
		counts[result.Op]++

		if result.Op == insts.OpTRAP {
			logger.Debug("trap dispatched", "vector", emu.TrapName(result.TrapVector), "pc", fmt.Sprintf("0x%04X", result.PC))
		}

		if result.Halted {
			code = result.ExitCode
			logger.Debug("halted", "pc", fmt.Sprintf("0x%04X", result.PC), "exit_code", code, "instructions", emulator.InstructionCount())
			break
		}
	}

	if profileOut != "" {
		if err := writeProfileSummary(profileOut, table, counts); err != nil {
			logger.Warn("failed to write profile summary", "error", err)
		}
	}

	return code, nil
}

func newProfileTable(logger *slog.Logger) (*profile.Table, error) {
	if profileIn == "" {
		return profile.NewTable(), nil
	}

	config, err := profile.LoadConfig(profileIn)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile config: %w", err)
	}
	logger.Debug("loaded profile config", "path", profileIn)

	return profile.NewTableWithConfig(config), nil
}

func writeProfileSummary(path string, table *profile.Table, counts map[insts.Op]uint64) error {
	summary := make(map[string]uint64, len(counts))
	for op, n := range counts {
		cost := table.Cost(insts.Instruction{Op: op})
		summary[opName(op)] += n * cost
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile summary: %w", err)
	}

	return nil
}

func opName(op insts.Op) string {
	switch op {
	case insts.OpBR:
		return "BR"
	case insts.OpADD:
		return "ADD"
	case insts.OpLD:
		return "LD"
	case insts.OpST:
		return "ST"
	case insts.OpJSR:
		return "JSR"
	case insts.OpAND:
		return "AND"
	case insts.OpLDR:
		return "LDR"
	case insts.OpSTR:
		return "STR"
	case insts.OpRTI:
		return "RTI"
	case insts.OpNOT:
		return "NOT"
	case insts.OpLDI:
		return "LDI"
	case insts.OpSTI:
		return "STI"
	case insts.OpJMP:
		return "JMP"
	case insts.OpRES:
		return "RES"
	case insts.OpLEA:
		return "LEA"
	case insts.OpTRAP:
		return "TRAP"
	default:
		return "UNKNOWN"
	}
}
