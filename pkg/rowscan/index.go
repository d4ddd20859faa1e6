package rowscan

import (
	"golang.org/x/sync/errgroup"

	"github.com/shapestone/shape-rowscan/internal/boundary"
)

// parallelThreshold is the smallest input Index splits across goroutines.
var parallelThreshold = 64 << 10

// Index returns the spans of all records in buf.
//
// With Threads > 1 and EmbeddedNewlines unset, buf is cut into Threads
// chunks at record boundaries and each chunk is indexed in its own
// goroutine. Quote state cannot be recovered in the middle of a buffer, so
// with EmbeddedNewlines set indexing is always sequential.
func Index(buf []byte, opts Options) ([]Span, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Threads < 2 || opts.EmbeddedNewlines || len(buf) < parallelThreshold {
		return indexSequential(buf, opts), nil
	}

	start := boundary.FindFirstLine(buf, opts.Skip, opts.Comment, opts.SkipEmptyRows, false, opts.Quote)
	cuts := chunkEdges(buf, start, opts.Threads, opts.Quote)

	parts := make([][]Span, len(cuts)-1)
	var g errgroup.Group
	for i := range parts {
		g.Go(func() error {
			parts[i] = indexChunk(getSpans(), buf[:cuts[i+1]], cuts[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	spans := make([]Span, 0, n)
	for _, p := range parts {
		spans = append(spans, p...)
		putSpans(p)
	}

	if opts.warns() {
		checkEndings(buf, spans, opts)
	}
	return spans, nil
}

func indexSequential(buf []byte, opts Options) []Span {
	var spans []Span
	s := NewScanner(buf, opts)
	for s.Scan() {
		spans = append(spans, s.Span())
	}
	return spans
}

// indexChunk appends the spans of buf[begin:] to spans.
func indexChunk(spans []Span, buf []byte, begin int, opts Options) []Span {
	s := newChunkScanner(buf, begin, opts)
	for s.Scan() {
		spans = append(spans, s.Span())
	}
	return spans
}

// chunkEdges splits buf[start:] into at most n chunks. Every edge is the
// start of a line, so no terminator is split. The first edge is start and
// the last is len(buf).
func chunkEdges(buf []byte, start, n int, quote byte) []int {
	edges := []int{start}
	size := (len(buf) - start) / n
	for i := 1; i < n && size > 0; i++ {
		guess := start + i*size
		if last := edges[len(edges)-1]; guess < last {
			guess = last
		}
		off, _ := boundary.FindNextNewline(buf, guess, "", false, false, quote)
		edge := boundary.NextLineStart(buf, off)
		if edge >= len(buf) {
			break
		}
		if edge > edges[len(edges)-1] {
			edges = append(edges, edge)
		}
	}
	return append(edges, len(buf))
}

// checkEndings replays the line ending check of Scanner over spans produced
// by parallel chunks.
func checkEndings(buf []byte, spans []Span, opts Options) {
	var endings lineEndings
	line, pos := 1, 0
	for _, sp := range spans {
		line += countLines(buf[pos:sp.Begin])
		pos = sp.Begin
		endings.check(buf, sp, line, opts)
	}
}
