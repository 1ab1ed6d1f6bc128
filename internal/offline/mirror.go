package offline

// Mirror records local mutations into the sync queue while the monitor
// reports the application as disconnected. While online, writes need no
// queueing and Record is a no-op. It satisfies the service layer's
// MutationRecorder interface.
type Mirror struct {
	queue   *Queue
	monitor *Monitor
}

// NewMirror wires a queue and a monitor into a mutation recorder.
func NewMirror(queue *Queue, monitor *Monitor) *Mirror {
	return &Mirror{queue: queue, monitor: monitor}
}

// Record enqueues the mutation descriptor when offline.
func (m *Mirror) Record(endpoint, method string, payload any) {
	if m.monitor.Online() {
		return
	}
	m.queue.Enqueue(endpoint, method, payload)
}
