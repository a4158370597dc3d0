package instrument

// Capture accumulates the program counters one worker observes. Each worker
// owns exactly one Capture and never shares it, so no locking is involved.
// The zero value is ready to use and disabled.
type Capture struct {
	enabled bool
	pcs     []uint32
}

// Begin starts (or restarts) capturing on this worker. The buffer is
// cleared either way: calling Begin twice in a row leaves it empty.
func (c *Capture) Begin() {
	c.enabled = true
	c.pcs = c.pcs[:0]
}

// observe appends pc when capturing is on. It runs on every executed
// instruction regardless of configuration, so the disabled path is a single
// branch.
func (c *Capture) observe(pc uint16) {
	if c == nil || !c.enabled {
		return
	}
	c.pcs = append(c.pcs, uint32(pc))
}

// Take stops capturing and hands the buffer to the caller, who owns it from
// then on. A fresh empty buffer is left behind: taking twice yields nothing
// the second time, and a later Begin starts from empty regardless.
func (c *Capture) Take() []uint32 {
	c.enabled = false
	out := c.pcs
	c.pcs = nil
	return out
}

// Enabled reports whether this worker is currently capturing.
func (c *Capture) Enabled() bool {
	return c != nil && c.enabled
}
