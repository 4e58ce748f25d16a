package utils

// historyDepth is how many recent fingerprints are kept; enough to catch
// static boards and the common period-2 and period-3 oscillator cycles.
const historyDepth = 5

// StagnationDetector tracks recent grid fingerprints to spot boards that
// have gone static or fallen into a short cycle.
type StagnationDetector struct {
	history []string
}

// Observe appends the fingerprint of a completed generation, dropping the
// oldest entry beyond the history depth.
func (d *StagnationDetector) Observe(fingerprint string) {
	d.history = append(d.history, fingerprint)
	if len(d.history) > historyDepth {
		d.history = d.history[1:]
	}
}

// IsStagnant reports whether the current fingerprint matches any of the last
// three observed states. It stays false until enough history has been seen.
func (d *StagnationDetector) IsStagnant(current string) bool {
	if len(d.history) < 3 {
		return false
	}

	for i := 1; i <= 3 && i <= len(d.history); i++ {
		if d.history[len(d.history)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets all observed history, used after reseeding the board.
func (d *StagnationDetector) Reset() {
	d.history = nil
}
