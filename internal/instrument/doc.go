// Package instrument records, on demand, which program locations a bytecode
// interpreter executes.
//
// The interpreter calls Dispatcher.Trace once per executed instruction. The
// call fans out, in order, to three facilities:
//
//   - Capture: a per-worker, in-memory program-counter buffer
//   - Sink: a shared append-only trace file, one "<label>,<pc>" line per record
//   - Stepper: an optional interactive stepping session
//
// When nothing is enabled the whole path is a handful of branch checks, so
// the layer can sit on the hot per-instruction loop.
//
// # Configuration
//
// Enablement is resolved from the environment, lazily, once per process:
//
//	MOVE_VM_TRACE=[path]  enable file tracing (default: move_vm_trace.trace)
//	MOVE_VM_STEP=1        enable interactive stepping
//
// Presence alone enables a facility; MOVE_VM_TRACE's value, when non-empty,
// overrides the trace-file path. Tests and embedders can bypass the
// environment entirely by constructing a Config by hand.
//
// # Ownership
//
// A Capture belongs to exactly one worker and is passed explicitly (or via
// context for callers that thread one); it needs no locking. The Sink and
// the stepping session are process-wide and serialized by their own locks:
// lock acquisition order is write order, and within one worker call order is
// always preserved.
//
// # Failure
//
// A sink that cannot be opened or written disables file tracing for the rest
// of the process after reporting once to stderr; it never takes the
// interpreter down. Dispatcher.Err exposes the first failure.
package instrument
