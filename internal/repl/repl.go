// Package repl implements the interactive read-eval-print loop:
// chzyer/readline for line editing and history, fatih/color for the
// [OUT]:/[ERROR]: output convention, and logrus-backed :debug toggles
// for inspecting parser/evaluator internals mid-session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/akashmaji946/gomix/internal/env"
	"github.com/akashmaji946/gomix/internal/eval"
	"github.com/akashmaji946/gomix/internal/grammar"
	"github.com/akashmaji946/gomix/internal/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session: its banner text and prompt, plus the
// evaluator it threads an environment through across input lines.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string

	evaluator *eval.Evaluator
}

// New builds a Repl whose evaluator logs debug events to log (debug
// toggles raise log's level to Debug; they do not replace it).
func New(banner, version, line, prompt string, log *logrus.Logger) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    line,
		Prompt:  prompt,
		evaluator: &eval.Evaluator{
			Log: log,
		},
	}
}

// SetWriter redirects where the evaluator's print statements write,
// independent of where meta-command/error output above goes — used by
// internal/cliserver to point a connection's evaluator at its socket.
func (r *Repl) SetWriter(w io.Writer) { r.evaluator.Writer = w }

// PrintBanner exposes the startup banner for callers (such as a TCP
// server) that manage their own per-connection loop instead of Start.
func (r *Repl) PrintBanner(w io.Writer) { r.printBanner(w) }

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type an expression and press enter.")
	cyanColor.Fprintln(w, "Meta-commands: :exit  :clear  :help  :debug io|node|env|input")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until :exit, EOF (Ctrl+D), or a readline error.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)
	r.evaluator.Writer = w

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(w, "[ERROR]: %s\n", err)
		return
	}
	defer rl.Close()

	scope := env.Fresh()
	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good bye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		if strings.HasPrefix(line, ":") {
			if r.handleMeta(w, line) {
				return
			}
			continue
		}

		scope = r.EvalLine(w, line, scope)
	}
}

func (r *Repl) handleMeta(w io.Writer, line string) (exit bool) {
	switch {
	case line == ":exit":
		w.Write([]byte("Good bye!\n"))
		return true
	case line == ":clear":
		io.WriteString(w, "\033[H\033[2J")
		return false
	case line == ":help":
		cyanColor.Fprintln(w, "Meta-commands: :exit  :clear  :help  :debug io|node|env|input")
		return false
	case strings.HasPrefix(line, ":debug"):
		r.toggleDebug(w, strings.TrimSpace(strings.TrimPrefix(line, ":debug")))
		return false
	default:
		redColor.Fprintf(w, "[ERROR]: unknown meta-command %q\n", line)
		return false
	}
}

func (r *Repl) toggleDebug(w io.Writer, topic string) {
	switch topic {
	case "io", "node", "env", "input":
		r.evaluator.Log.SetLevel(logrus.DebugLevel)
		r.evaluator.Log.WithField("topic", topic).Debug("debug logging enabled")
	default:
		redColor.Fprintf(w, "[ERROR]: unknown debug topic %q (want io|node|env|input)\n", topic)
	}
}

// EvalLine parses and evaluates one line of top-level input against
// scope, writing [OUT]:/[ERROR]: lines to w, and returns the environment
// to continue from. Exported so internal/cliserver's per-connection loop
// can reuse it without going through readline, which only ever binds to
// the local process's stdin/stdout and cannot front a net.Conn.
//
// Recovers from any panic raised while parsing or evaluating line, the
// same last-resort guard the teacher's executeWithRecovery keeps around
// its own parse/eval call: a host-level bug must not take the whole
// session down, and unlike file mode the REPL continues afterward so the
// user can try again.
func (r *Repl) EvalLine(w io.Writer, line string, scope *env.Env) (next *env.Env) {
	next = scope
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	program, err := grammar.Parse(line)
	if err != nil {
		redColor.Fprintf(w, "[ERROR]: %s\n", err)
		return scope
	}
	for _, item := range program.Items {
		v, updated, evalErr := r.evaluator.Eval(item, next)
		if evalErr != nil {
			redColor.Fprintf(w, "[ERROR]: %s\n", evalErr)
			next = updated
			return next
		}
		next = updated
		if !value.IsUnit(v) {
			yellowColor.Fprintf(w, "[OUT]: %s\n", v.String())
		}
	}
	return next
}
