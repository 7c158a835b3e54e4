package relay

import "sync"

// Relay is an ordered hand-off queue between the background process reader
// and the UI redraw loop. The producer pushes lines as they arrive; the
// consumer drains the accumulated batch on its own schedule. The queue is
// unbounded: a stalled consumer grows memory rather than blocking the reader.
type Relay struct {
	mu    sync.Mutex
	lines []string
}

// New creates an empty relay.
func New() *Relay {
	return &Relay{}
}

// Push appends a line to the queue. It never blocks.
func (r *Relay) Push(line string) {
	r.mu.Lock()
	r.lines = append(r.lines, line)
	r.mu.Unlock()
}

// Drain returns every line pushed since the previous drain, in push order,
// and empties the queue. It returns nil when nothing is pending.
func (r *Relay) Drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.lines) == 0 {
		return nil
	}

	batch := r.lines
	r.lines = nil
	return batch
}

// Len reports the number of lines currently pending.
func (r *Relay) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.lines)
}
