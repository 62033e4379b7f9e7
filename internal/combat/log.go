package combat

// Log is the battle narration. Every new line raises the waiting flag, which
// holds the battle until the player acknowledges it.
type Log struct {
	lines   []string
	waiting bool
}

// Add appends a line and waits for acknowledgment.
func (l *Log) Add(line string) {
	l.lines = append(l.lines, line)
	l.waiting = true
}

// Ack dismisses the latest lines.
func (l *Log) Ack() {
	l.waiting = false
}

// Waiting reports whether the log holds the battle.
func (l *Log) Waiting() bool {
	return l.waiting
}

// Lines returns every line so far.
func (l *Log) Lines() []string {
	return l.lines
}

// Last returns up to n most recent lines, oldest first.
func (l *Log) Last(n int) []string {
	if n >= len(l.lines) {
		return l.lines
	}
	return l.lines[len(l.lines)-n:]
}

// Len returns the number of lines.
func (l *Log) Len() int {
	return len(l.lines)
}
