// Command noja is a thin harness around the compiler: it loads an AST
// (from a JSON fixture or a small built-in demo program, standing in for
// the external parser), compiles it, and prints a disassembly listing.
// It is not a language front end.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"noja/internal/arena"
	"noja/internal/ast"
	"noja/internal/compiler"
	"noja/internal/diag"
)

var verbose bool

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "noja",
		Short: "Compile and disassemble Noja bytecode fixtures",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print arena allocation stats alongside the disassembly")

	root.AddCommand(newDisasmCommand())
	root.AddCommand(newDemoCommand())
	return root
}

func newDisasmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm <fixture.json>",
		Short: "Compile a JSON AST fixture and print its disassembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			tree, err := decodeFixture(f)
			if err != nil {
				return err
			}
			return compileAndPrint(cmd, tree)
		},
	}
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Compile a small built-in program and print its disassembly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return compileAndPrint(cmd, buildDemoAST())
		},
	}
}

func compileAndPrint(cmd *cobra.Command, tree *ast.Node) error {
	a := arena.New()
	sink := diag.NewSink()

	exe, ok := compiler.Compile(tree, a, sink)
	if !ok {
		return fmt.Errorf("%s", sink.Error())
	}

	disassemble(cmd.OutOrStdout(), exe)

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d instructions, arena allocated %s across %d objects\n",
			exe.InstrCount(), humanize.Bytes(a.Allocated()), a.Objects())
	}
	return nil
}
