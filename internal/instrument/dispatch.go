package instrument

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// Dispatcher is the single entry point the interpreter calls once per
// executed instruction. It fans out to the worker's capture buffer, the
// shared trace sink, and the stepping session, in that order.
type Dispatcher struct {
	cfg  Config
	sink *Sink

	stepMu  sync.Mutex
	stepper Stepper

	failed  atomic.Bool
	errMu   sync.Mutex
	sinkErr error
}

// New builds a Dispatcher for cfg. stepper may be nil; stepping is then
// disabled no matter what cfg says, mirroring a build without the debug
// capability.
func New(cfg Config, stepper Stepper) *Dispatcher {
	if stepper == nil {
		cfg.Stepping = false
		stepper = NopStepper{}
	}
	return &Dispatcher{
		cfg:     cfg,
		sink:    NewSink(cfg.TracePath),
		stepper: stepper,
	}
}

// NewFromEnv builds a Dispatcher from the process-wide resolved
// configuration.
func NewFromEnv(stepper Stepper) *Dispatcher {
	return New(Resolve(), stepper)
}

// Trace records one executed instruction. c may be nil when the worker has
// no capture attached. Within one worker, call order is preserved in both
// the capture buffer and the trace file; across workers, sink lock
// acquisition order decides.
func (d *Dispatcher) Trace(c *Capture, ev *Event) {
	c.observe(ev.PC)

	if d.cfg.Tracing && !d.failed.Load() {
		if err := d.sink.WriteRecord(ev.Function.PrettyName(), ev.PC); err != nil {
			d.disableTracing(err)
		}
	}

	if d.cfg.Stepping {
		d.stepMu.Lock()
		d.stepper.Step(ev)
		d.stepMu.Unlock()
	}
}

// disableTracing turns file tracing off after the first sink failure so a
// misconfigured trace path cannot take the interpreter down with it.
func (d *Dispatcher) disableTracing(err error) {
	d.errMu.Lock()
	if d.sinkErr == nil {
		d.sinkErr = err
		fmt.Fprintf(os.Stderr, "trace: disabling file tracing: %v\n", err) //nolint:errcheck
	}
	d.errMu.Unlock()
	d.failed.Store(true)
}

// Err returns the first sink failure, or nil while tracing is healthy.
func (d *Dispatcher) Err() error {
	d.errMu.Lock()
	defer d.errMu.Unlock()
	return d.sinkErr
}

// Close releases the sink. Intended for tests and orderly shutdown; the
// flush-per-record policy makes it optional for embedders.
func (d *Dispatcher) Close() error {
	return d.sink.Close()
}
