package tasks

// SequenceGuard numbers fetches and rejects responses that are older than the newest one applied.
//
// Without a guard overlapping fetches apply in completion order, so a slow stale response can replace a newer one.
// The guard is opt-in and must be used from a single goroutine.
type SequenceGuard struct {
	issued  uint64
	applied uint64
}

// NewSequenceGuard returns a guard with no requests issued.
func NewSequenceGuard() *SequenceGuard {
	return &SequenceGuard{}
}

// Next numbers a new request.
func (g *SequenceGuard) Next() uint64 {
	g.issued++
	return g.issued
}

// Accept reports whether the response to request seq may be applied, and records it if so.
func (g *SequenceGuard) Accept(seq uint64) bool {
	if seq <= g.applied {
		return false
	}
	g.applied = seq
	return true
}
