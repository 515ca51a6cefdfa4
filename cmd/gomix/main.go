// Command gomix is the interpreter's CLI: an interactive REPL, a file
// runner, and a TCP-exposed REPL server, wired on top of spf13/cobra.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/gomix/internal/cliserver"
	"github.com/akashmaji946/gomix/internal/env"
	"github.com/akashmaji946/gomix/internal/eval"
	"github.com/akashmaji946/gomix/internal/grammar"
	"github.com/akashmaji946/gomix/internal/repl"
	"github.com/akashmaji946/gomix/internal/source"
	"github.com/akashmaji946/gomix/internal/value"
)

const (
	version = "v0.1.0"
	line    = "----------------------------------------------------------------"
	prompt  = "gomix >>> "
	banner  = `
   ___  ___  __  __ _____  __
  / _ \/ _ \/  \/  /  _/ |/_/
 / (_ / (_ / /\/ /_/ /_>  <
 \___/\___/_/  /_/___/_/|_|
`
)

// Exit codes per spec.md §6.
const (
	exitOK          = 0
	exitUsageError  = 64
	exitFileFailure = 74

	// exitRuntimePanic is not part of spec.md §6's three-value contract —
	// it is the file runner's host-level safety net, mirroring the
	// teacher's executeFileWithRecovery, and only fires on a bug in this
	// interpreter itself, never on a language-level error.
	exitRuntimePanic = 1
)

var (
	redColor  = color.New(color.FgRed)
	debugFlag bool
)

func main() {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	var runPath string
	var replMode bool
	root := &cobra.Command{
		Use:           "gomix",
		Short:         "gomix is an interpreter for a small dynamically-typed expression language",
		SilenceUsage:  true,
		SilenceErrors: true,
		// No subcommand defaults to the REPL, the same "REPL mode by
		// default" texture as the teacher's own MODE = "repl" default.
		// -r FILE runs a file and -s starts the REPL, like the run and
		// repl subcommands.
		RunE: func(cmd *cobra.Command, args []string) error {
			if runPath != "" {
				return runFile(log, runPath)
			}
			startRepl(log)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	root.Flags().StringVarP(&runPath, "run", "r", "", "parse and evaluate FILE")
	root.Flags().BoolVarP(&replMode, "repl", "s", false, "start an interactive read-eval-print loop")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debugFlag {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(
		replCommand(log),
		runCommand(log),
		serveCommand(log),
	)

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR]: %s\n", err)
		os.Exit(exitUsageError)
	}
}

func startRepl(log *logrus.Logger) {
	r := repl.New(banner, version, line, prompt, log)
	r.Start(os.Stdout)
}

func replCommand(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repl",
		Aliases: []string{"-s"},
		Short:   "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			startRepl(log)
			return nil
		},
	}
	return cmd
}

func runCommand(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run FILE",
		Aliases: []string{"-r"},
		Short:   "Parse and evaluate a source file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(log, args[0])
		},
	}
	return cmd
}

func serveCommand(log *logrus.Logger) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the REPL over a TCP socket, one session per connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := &cliserver.Server{Banner: banner, Version: version, Line: line, Prompt: prompt, Log: log}
			return srv.ListenAndServe(addr)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", ":4000", "address to listen on")
	return cmd
}

// runFile implements the file-runner CLI mode: read, parse, then
// evaluate each top-level item in sequence, printing and continuing
// past evaluation errors (spec.md §6) but aborting on a read or parse
// failure.
//
// Recovers from any panic raised while evaluating, the same last-resort
// guard the teacher's executeFileWithRecovery keeps: unlike the REPL,
// file mode does not continue afterward, since a host-level bug partway
// through a script leaves no trustworthy environment to resume from.
func runFile(log *logrus.Logger, path string) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(exitRuntimePanic)
		}
	}()

	src, err := source.Load(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR]: %s\n", err)
		os.Exit(exitFileFailure)
	}

	program, err := grammar.Parse(src)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR]: %s\n", err)
		os.Exit(exitUsageError)
	}

	ev := eval.New()
	ev.Log = log
	scope := env.Fresh()
	for _, item := range program.Items {
		v, next, evalErr := ev.Eval(item, scope)
		if evalErr != nil {
			redColor.Fprintf(os.Stderr, "[ERROR]: %s\n", evalErr)
			scope = next
			continue
		}
		scope = next
		if !value.IsUnit(v) {
			fmt.Println(v.String())
		}
	}
	return nil
}
