// Package source assigns a stable identity to each piece of GraphQL source
// text fed into the compiler front-end and maps byte offsets within it back
// to human-readable (line, column) positions.
package source

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// FileID stably identifies one registered source input. It carries both a
// process-local sequence number (cheap to compare/order/print) and a
// globally unique uuid half, so FileIDs minted by independent builder runs
// — as happens when an IDE merges partial builds from several processes —
// never collide.
type FileID struct {
	seq  uint32
	uniq uuid.UUID
}

// String renders a FileID as "<seq>/<uuid>", primarily for log lines.
func (f FileID) String() string {
	return fmt.Sprintf("%d/%s", f.seq, f.uniq)
}

// IsZero reports whether f is the zero value (no file registered).
func (f FileID) IsZero() bool {
	return f.seq == 0 && f.uniq == uuid.Nil
}

// Location is a 1-based line and column within a single file.
type Location struct {
	Line   int
	Column int
}

// Before reports whether a sorts strictly before b.
func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

func (a Location) String() string {
	return fmt.Sprintf("%d:%d", a.Line, a.Column)
}

// Span is a half-open byte-offset range [Start, End) within one file. A
// zero-length Span (Start == End) is legal and denotes an insertion point,
// e.g. the position of an elided token the parser expected but never saw.
type Span struct {
	File  FileID
	Start int
	End   int
}

// Contains reports whether offset lies within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// file holds one registered source's text and a precomputed table of the
// byte offset at which each line begins, enabling binary-search offset→
// (line, column) lookup.
type file struct {
	id         FileID
	path       string
	text       string
	lineStarts []int
}

func newFile(id FileID, path, text string) *file {
	f := &file{id: id, path: path, text: text, lineStarts: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// locate converts a byte offset into a 1-based (line, column) pair. Columns
// count UTF-8 bytes, not runes, matching the teacher's scanner-based
// lexer which reports byte columns.
func (f *file) locate(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.text) {
		offset = len(f.text)
	}
	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return Location{Line: line + 1, Column: offset - f.lineStarts[line] + 1}
}

// Map is the registry of all sources parsed during one compiler run. Sources
// are registered once at parse time and never mutated (§3 Lifecycle). A Map
// is safe for concurrent reads; registration takes a lock.
type Map struct {
	mu    sync.RWMutex
	seq   uint32
	files map[FileID]*file
	byPath map[string]FileID
}

// NewMap creates an empty source map.
func NewMap() *Map {
	return &Map{files: make(map[FileID]*file), byPath: make(map[string]FileID)}
}

// Add registers source text under path and returns its stable FileID. Calling
// Add twice with the same path returns a new, distinct FileID each time —
// callers that want idempotent registration should track FileIDs themselves;
// the source map does not second-guess repeated input.
func (m *Map) Add(path, text string) FileID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := FileID{seq: m.seq, uniq: uuid.New()}
	m.files[id] = newFile(id, path, text)
	m.byPath[path] = id
	return id
}

// Path returns the registered path for id, or "" if unknown.
func (m *Map) Path(id FileID) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.files[id]; ok {
		return f.path
	}
	return ""
}

// Text returns the full registered source text for id, or "" if unknown.
func (m *Map) Text(id FileID) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.files[id]; ok {
		return f.text
	}
	return ""
}

// Locate maps a byte offset within id to a (line, column) pair. Unknown
// FileIDs locate to the zero Location.
func (m *Map) Locate(id FileID, offset int) Location {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[id]
	if !ok {
		return Location{}
	}
	return f.locate(offset)
}

// Excerpt returns the source line(s) covered by span, for diagnostic
// rendering. It never panics on out-of-range spans; it clamps instead.
func (m *Map) Excerpt(span Span) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[span.File]
	if !ok {
		return ""
	}
	start := span.Start
	if start < 0 {
		start = 0
	}
	end := span.End
	if end > len(f.text) {
		end = len(f.text)
	}
	if start > end {
		start = end
	}
	// expand to whole lines for readability
	lineStart := start
	for lineStart > 0 && f.text[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := end
	for lineEnd < len(f.text) && f.text[lineEnd] != '\n' {
		lineEnd++
	}
	return f.text[lineStart:lineEnd]
}
