package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thelolagemann/lr35902/internal/asm"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are shared by every subcommand.
type options struct {
	af, bc, de, hl uint16
	strict         bool
	verbose        bool
}

func (o *options) registers() cpu.Registers {
	var r cpu.Registers
	r.SetAF(o.af)
	r.SetBC(o.bc)
	r.SetDE(o.de)
	r.SetHL(o.hl)
	return r
}

func (o *options) logger() log.Logger {
	if o.verbose {
		return log.NewWithLevel(logrus.DebugLevel)
	}
	return log.New()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "lr35902",
		Short:        "Execute LR35902 ALU instructions and trace the register file",
		SilenceUsage: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.Uint16Var(&opts.af, "af", 0, "Initial value of AF (bits 3-0 are discarded)")
	flags.Uint16Var(&opts.bc, "bc", 0, "Initial value of BC")
	flags.Uint16Var(&opts.de, "de", 0, "Initial value of DE")
	flags.Uint16Var(&opts.hl, "hl", 0, "Initial value of HL")
	flags.BoolVar(&opts.strict, "strict", false, "Stop at the first instruction that cannot be executed")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newExecCmd(opts), newDecodeCmd(opts))
	return rootCmd
}

func newExecCmd(opts *options) *cobra.Command {
	var file string

	execCmd := &cobra.Command{
		Use:   "exec [instructions...]",
		Short: "Execute assembler instructions, e.g. \"ADD A, C\" \"CP 0x10\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			var program []cpu.Instruction
			if file != "" {
				src, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if program, err = asm.ParseProgram(string(src)); err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
			}
			for _, arg := range args {
				ins, err := asm.Parse(arg)
				if err != nil {
					return err
				}
				program = append(program, ins)
			}
			if len(program) == 0 {
				return errors.New("no instructions given")
			}

			return run(cmd.OutOrStdout(), opts, program)
		},
	}
	execCmd.Flags().StringVar(&file, "file", "", "Program file, one instruction per line")

	return execCmd
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [hex bytes...]",
		Short: "Decode and execute raw opcodes, e.g. \"81 C6 10\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := hex.DecodeString(strings.Join(strings.Fields(strings.Join(args, " ")), ""))
			if err != nil {
				return err
			}
			program, err := decodeProgram(code)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), opts, program)
		},
	}
}
