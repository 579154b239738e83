package timer

// DoorTimer counts the dwell of an open door in logical ticks.
// The zero value is an idle timer.
type DoorTimer struct {
	remaining int
}

// Start arms the timer for ticks. Values below 1 are raised to 1 so an opened door always dwells.
func (t *DoorTimer) Start(ticks int) {
	t.remaining = max(ticks, 1)
}

// Tick counts down one tick and reports whether the timer expired on this tick.
// An idle timer never expires.
func (t *DoorTimer) Tick() bool {
	if t.remaining == 0 {
		return false
	}
	t.remaining--
	return t.remaining == 0
}

func (t *DoorTimer) Remaining() int {
	return t.remaining
}

func (t *DoorTimer) Active() bool {
	return t.remaining > 0
}
