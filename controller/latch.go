package controller

// Latch is a two-state key edge detector. It fires once when the key goes
// down while armed, then stays disarmed until the key is released.
// The zero value is armed.
type Latch struct {
	disarmed bool
}

// Fire reports whether held is a fresh press and updates the latch.
func (l *Latch) Fire(held bool) bool {
	if !held {
		l.disarmed = false
		return false
	}
	if l.disarmed {
		return false
	}
	l.disarmed = true
	return true
}

// Armed reports whether the next press will fire.
func (l Latch) Armed() bool {
	return !l.disarmed
}
