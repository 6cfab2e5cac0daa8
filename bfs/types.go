package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrDisconnected is returned by Eccentricity when some vertex cannot be
	// reached from the source.
	ErrDisconnected = errors.New("bfs: graph is disconnected")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters for a BFS run.
type Options struct {
	// OnVisit is called when a vertex is dequeued. A non-nil error aborts the
	// search and is returned from BFS.
	OnVisit func(id, depth int) error
}

// DefaultOptions returns Options with a no-op hook.
func DefaultOptions() Options {
	return Options{OnVisit: func(int, int) error { return nil }}
}

// WithOnVisit installs a visit hook. Nil is ignored.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS from a single source.
type Result struct {
	// Source is the start vertex.
	Source int

	// Order lists vertices in the order they were dequeued (non-decreasing depth).
	Order []int

	// Depth[v] is the hop distance from Source, or -1 if v was not reached.
	Depth []int

	// Sigma[v] is the number of distinct shortest paths Source -> v.
	// Stored as float64 since path counts grow exponentially with depth.
	Sigma []float64

	// Preds[v] lists the neighbors of v that precede it on a shortest path,
	// in ascending order.
	Preds [][]int
}

// Reached reports whether v was discovered.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
