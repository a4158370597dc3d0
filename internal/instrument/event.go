package instrument

import "fmt"

// Function identifies the executing function. PrettyName is called only
// when a record is actually written, so disabled tracing never pays for
// name formatting.
type Function interface {
	PrettyName() string
}

// LocalsView gives the stepping session read access to the current frame's
// locals.
type LocalsView interface {
	Len() int
	// Local renders the value held in slot i.
	Local(i int) string
}

// Interpreter is the debug surface the interpreter exposes so the stepping
// session can inspect execution state.
type Interpreter interface {
	CallDepth() int
	StackTrace() string
}

// Event is the per-instruction bundle the interpreter hands to the
// Dispatcher. It is never persisted; the sink keeps only the function label
// and pc.
type Event struct {
	Function Function
	Locals   LocalsView
	PC       uint16
	Instr    fmt.Stringer
	Interp   Interpreter
}
