package instrument

// Stepper is the optional interactive stepping capability. The Dispatcher
// invokes it synchronously under the process-wide step lock: the calling
// worker blocks until the session returns, and sessions are serialized
// across workers.
type Stepper interface {
	Step(ev *Event)
}

// NopStepper is the default capability for builds that run without a
// debugger attached.
type NopStepper struct{}

// Step does nothing.
func (NopStepper) Step(*Event) {}
