// Command iccc lowers a program IR (§6) to target assembly text on
// stdout. The parser producing that IR, and anything that runs the
// resulting assembly, are external collaborators (§1) -- this binary
// only drives the two-pass code generator.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"icc/ast"
	"icc/compiler"
	"icc/sourceio"
)

var debug bool

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: zerolog.TimeFormatUnix})

	root := &cobra.Command{
		Use:           "iccc [program.yaml]",
		Short:         "iccc compiles a program IR into target assembly",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCompile,
	}
	root.Flags().BoolVar(&debug, "debug", false, "log each compile stage")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("compile failed")
		os.Exit(1)
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	prog, err := loadProgram(args)
	if err != nil {
		return err
	}
	log.Debug().Int("statements", len(prog.Statements)).Msg("program loaded")

	out, err := compiler.Generate(prog)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	log.Debug().Int("bytes", len(out)).Msg("generated assembly")
	fmt.Println(out)
	return nil
}

func loadProgram(args []string) (ast.Program, error) {
	if len(args) == 1 {
		log.Debug().Str("path", args[0]).Msg("loading program")
		return sourceio.LoadFile(args[0])
	}
	log.Debug().Msg("loading program from stdin")
	return sourceio.Load(os.Stdin)
}
