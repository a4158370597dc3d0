package debug_test

import (
	"bytes"
	"strings"
	"testing"

	"movetrace/internal/debug"
	"movetrace/internal/instrument"
)

type fnLabel string

func (f fnLabel) PrettyName() string { return string(f) }

type opcode string

func (o opcode) String() string { return string(o) }

// frame is a stub interpreter handle with fixed locals and stack.
type frame struct {
	locals []string
	depth  int
}

func (f *frame) Len() int           { return len(f.locals) }
func (f *frame) Local(i int) string { return f.locals[i] }
func (f *frame) CallDepth() int     { return f.depth }
func (f *frame) StackTrace() string { return "  0: main::run\n" }

func stepEvent(pc uint16, fr *frame) *instrument.Event {
	ev := &instrument.Event{Function: fnLabel("main::run"), PC: pc, Instr: opcode("LdU64(1)")}
	if fr != nil {
		ev.Locals = fr
		ev.Interp = fr
	}
	return ev
}

func TestSessionStopsOncePerStep(t *testing.T) {
	var out bytes.Buffer
	s := debug.NewSession(strings.NewReader("step\nstep\n"), &out, false)

	fr := &frame{depth: 1}
	s.Step(stepEvent(0, fr))
	s.Step(stepEvent(1, fr))

	got := out.String()
	want := "[depth=1] main::run pc=0 LdU64(1)\n[depth=1] main::run pc=1 LdU64(1)\n"
	if got != want {
		t.Fatalf("session output:\n%q\nwant:\n%q", got, want)
	}
}

func TestSessionStepCountSkipsStops(t *testing.T) {
	var out bytes.Buffer
	s := debug.NewSession(strings.NewReader("step 3\ncontinue\n"), &out, false)

	for pc := uint16(0); pc < 5; pc++ {
		s.Step(stepEvent(pc, nil))
	}

	got := out.String()
	if !strings.Contains(got, "pc=0") || !strings.Contains(got, "pc=3") {
		t.Fatalf("expected stops at pc=0 and pc=3, got:\n%s", got)
	}
	if strings.Contains(got, "pc=1") || strings.Contains(got, "pc=2") || strings.Contains(got, "pc=4") {
		t.Fatalf("stopped at a skipped instruction:\n%s", got)
	}
}

func TestSessionContinueDetaches(t *testing.T) {
	var out bytes.Buffer
	s := debug.NewSession(strings.NewReader("continue\n"), &out, false)

	s.Step(stepEvent(0, nil))
	before := out.Len()
	for pc := uint16(1); pc < 10; pc++ {
		s.Step(stepEvent(pc, nil))
	}
	if out.Len() != before {
		t.Fatalf("session kept writing after continue:\n%s", out.String())
	}
}

func TestSessionLocalsAndStack(t *testing.T) {
	var out bytes.Buffer
	s := debug.NewSession(strings.NewReader("locals\nstack\nquit\n"), &out, false)

	fr := &frame{locals: []string{"U64(3)", "Bool(true)"}, depth: 2}
	s.Step(stepEvent(7, fr))

	got := out.String()
	for _, want := range []string{"  L0 = U64(3)\n", "  L1 = Bool(true)\n", "  0: main::run\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSessionIgnoresBlanksAndComments(t *testing.T) {
	var out bytes.Buffer
	s := debug.NewSession(strings.NewReader("\n# warming up\nstep\n"), &out, false)

	s.Step(stepEvent(0, nil))
	if strings.Contains(out.String(), "error") {
		t.Fatalf("blank/comment lines reported errors:\n%s", out.String())
	}
}

func TestSessionUnknownCommandReprompts(t *testing.T) {
	var out bytes.Buffer
	s := debug.NewSession(strings.NewReader("frobnicate\nstep\n"), &out, false)

	s.Step(stepEvent(0, nil))
	if !strings.Contains(out.String(), "error: unknown command") {
		t.Fatalf("unknown command not reported:\n%s", out.String())
	}
}

func TestSessionExhaustedInputContinues(t *testing.T) {
	var out bytes.Buffer
	s := debug.NewSession(strings.NewReader(""), &out, false)

	for pc := uint16(0); pc < 3; pc++ {
		s.Step(stepEvent(pc, nil))
	}
	if strings.Count(out.String(), "pc=") != 1 {
		t.Fatalf("session did not detach after input ran out:\n%s", out.String())
	}
}

func TestSessionPromptOnlyWhenInteractive(t *testing.T) {
	var script bytes.Buffer
	debug.NewSession(strings.NewReader("continue\n"), &script, false).Step(stepEvent(0, nil))
	if strings.Contains(script.String(), "(mvdb)") {
		t.Error("prompt printed in script mode")
	}

	var inter bytes.Buffer
	debug.NewSession(strings.NewReader("continue\n"), &inter, true).Step(stepEvent(0, nil))
	if !strings.Contains(inter.String(), "(mvdb) ") {
		t.Error("prompt missing in interactive mode")
	}
}
