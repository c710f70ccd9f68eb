package certgroup

// rejectedList is a bounded FIFO of DER certificate blobs that failed
// verification, deduplicated by byte identity so a peer repeatedly
// retrying with the same bad certificate does not evict older, still
// relevant, entries.
type rejectedList struct {
	entries [][]byte
	max     int
}

func newRejectedList(max int) *rejectedList {
	return &rejectedList{max: max}
}

// add appends der if it is not already present, evicting the oldest
// entry first if the list is at capacity.
func (r *rejectedList) add(der []byte) {
	for _, d := range r.entries {
		if bytesEqual(d, der) {
			return
		}
	}
	if r.max > 0 && len(r.entries) >= r.max {
		r.entries = r.entries[1:]
	}
	r.entries = append(r.entries, der)
}

func (r *rejectedList) all() [][]byte {
	out := make([][]byte, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *rejectedList) len() int { return len(r.entries) }
