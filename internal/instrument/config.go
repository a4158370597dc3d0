package instrument

import (
	"os"
	"sync"
)

// Environment variables consulted by FromEnv. Presence alone enables the
// corresponding facility.
const (
	// TraceEnvVar enables file tracing; a non-empty value overrides the
	// default trace-file path.
	TraceEnvVar = "MOVE_VM_TRACE"
	// StepEnvVar enables interactive stepping, honored only when a real
	// Stepper was supplied at construction.
	StepEnvVar = "MOVE_VM_STEP"
)

// DefaultTracePath is where records go when MOVE_VM_TRACE is set without a
// value.
const DefaultTracePath = "move_vm_trace.trace"

// Config is the resolved instrumentation configuration. Built once,
// read-only for the rest of the process lifetime.
type Config struct {
	Tracing   bool   // append a record per instruction to TracePath
	Stepping  bool   // hand every instruction to the stepping session
	TracePath string // trace-file destination
}

// FromEnv builds a Config from the current environment. Absent variables
// degrade to disabled/default values; there are no error conditions.
func FromEnv() Config {
	cfg := Config{TracePath: DefaultTracePath}
	if v, ok := os.LookupEnv(TraceEnvVar); ok {
		cfg.Tracing = true
		if v != "" {
			cfg.TracePath = v
		}
	}
	if _, ok := os.LookupEnv(StepEnvVar); ok {
		cfg.Stepping = true
	}
	return cfg
}

// Resolve returns the process-wide configuration. The environment is read
// on first call; every later call is a free read of the cached value.
var Resolve = sync.OnceValue(FromEnv)
