// Package debug provides the interactive stepping session behind the
// instrument.Stepper capability. The dispatcher hands it every executed
// instruction while stepping is enabled; the session decides whether to
// stop and prompt or to let execution run on.
package debug

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"movetrace/internal/instrument"
)

var _ instrument.Stepper = (*Session)(nil)

// Session is a line-oriented stepping REPL. It is not safe for concurrent
// use on its own; the dispatcher's step lock serializes entry.
type Session struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool

	skip int  // instructions to pass through before the next stop
	cont bool // detached: never stop again
}

// NewSession creates a stepping session reading commands from in and
// writing to out. Script mode (interactive=false) suppresses the prompt and
// works from any reader, e.g. a canned command string.
func NewSession(in io.Reader, out io.Writer, interactive bool) *Session {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &Session{in: bufio.NewScanner(in), out: out, interactive: interactive}
}

// Step implements instrument.Stepper. It blocks the calling worker until a
// command resumes execution. Exhausted input behaves like continue.
func (s *Session) Step(ev *instrument.Event) {
	if s == nil || s.cont {
		return
	}
	if s.skip > 0 {
		s.skip--
		return
	}

	s.printStopLine(ev)

	for {
		if s.interactive {
			fmt.Fprint(s.out, "(mvdb) ") //nolint:errcheck
		}
		if !s.in.Scan() {
			s.cont = true
			return
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if s.execCommand(line, ev) {
			return
		}
	}
}

// execCommand runs one command and reports whether execution resumes.
func (s *Session) execCommand(line string, ev *instrument.Event) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "help":
		s.help()
	case "step", "s":
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v <= 0 {
				fmt.Fprintln(s.out, "error: step expects a positive count") //nolint:errcheck
				return false
			}
			n = v
		}
		s.skip = n - 1
		return true
	case "continue", "c", "quit", "q":
		// With no way to unwind the interpreter from here, quit just
		// detaches the session.
		s.cont = true
		return true
	case "locals":
		s.printLocals(ev)
	case "stack":
		if ev.Interp == nil {
			fmt.Fprintln(s.out, "no interpreter handle") //nolint:errcheck
			break
		}
		fmt.Fprint(s.out, ev.Interp.StackTrace()) //nolint:errcheck
	case "where":
		s.printStopLine(ev)
	default:
		fmt.Fprintln(s.out, "error: unknown command") //nolint:errcheck
	}
	return false
}

func (s *Session) printStopLine(ev *instrument.Event) {
	if ev.Interp != nil {
		fmt.Fprintf(s.out, "[depth=%d] %s pc=%d %s\n", ev.Interp.CallDepth(), label(ev), ev.PC, instrText(ev)) //nolint:errcheck
		return
	}
	fmt.Fprintf(s.out, "%s pc=%d %s\n", label(ev), ev.PC, instrText(ev)) //nolint:errcheck
}

func (s *Session) printLocals(ev *instrument.Event) {
	if ev.Locals == nil || ev.Locals.Len() == 0 {
		fmt.Fprintln(s.out, "no locals") //nolint:errcheck
		return
	}
	for i := 0; i < ev.Locals.Len(); i++ {
		fmt.Fprintf(s.out, "  L%d = %s\n", i, ev.Locals.Local(i)) //nolint:errcheck
	}
}

func label(ev *instrument.Event) string {
	if ev.Function != nil {
		return ev.Function.PrettyName()
	}
	return "<fn>"
}

func instrText(ev *instrument.Event) string {
	if ev.Instr != nil {
		return ev.Instr.String()
	}
	return "<instr>"
}

func (s *Session) help() {
	fmt.Fprintln(s.out, "commands:")       //nolint:errcheck
	fmt.Fprintln(s.out, "  help")          //nolint:errcheck
	fmt.Fprintln(s.out, "  step|s [n]")    //nolint:errcheck
	fmt.Fprintln(s.out, "  continue|c")    //nolint:errcheck
	fmt.Fprintln(s.out, "  locals")        //nolint:errcheck
	fmt.Fprintln(s.out, "  stack")         //nolint:errcheck
	fmt.Fprintln(s.out, "  where")         //nolint:errcheck
	fmt.Fprintln(s.out, "  quit|q")        //nolint:errcheck
}
