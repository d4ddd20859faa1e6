package rowscan

import "sync"

// chunkPool holds the per-chunk span slices of parallel Index calls. They
// are copied into the result and can be reused by the next call.
var chunkPool = sync.Pool{
	New: func() interface{} {
		s := make([]Span, 0, 1024)
		return &s
	},
}

// getSpans gets an empty []Span from the pool.
func getSpans() []Span {
	p := chunkPool.Get().(*[]Span)
	return (*p)[:0]
}

// putSpans returns spans to the pool unless it grew too large to keep.
func putSpans(spans []Span) {
	const maxCapacity = 1 << 20
	if cap(spans) > maxCapacity {
		return
	}
	spans = spans[:0]
	chunkPool.Put(&spans)
}
