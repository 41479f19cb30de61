package ast

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// interner deduplicates identifier strings. GraphQL documents reuse the
// same field/type/argument names constantly (every "id" field in a schema
// is the literal string "id"); interning keeps one allocation per distinct
// name instead of one per occurrence; bounding it with an LRU (rather than
// an unbounded map) matters for long-running processes — an IDE language
// server parsing thousands of edited buffers over a session should not
// grow this table without limit.
type interner struct {
	cache *lru.Cache[uint64, string]
}

const internerSize = 1 << 16

func newInterner() *interner {
	cache, err := lru.New[uint64, string](internerSize)
	if err != nil {
		// Only returns an error for a non-positive size, which is a
		// compile-time constant here — this can never happen.
		panic(err)
	}
	return &interner{cache: cache}
}

func (in *interner) intern(s string) string {
	h := xxhash.Sum64String(s)
	if existing, ok := in.cache.Get(h); ok && existing == s {
		return existing
	}
	in.cache.Add(h, s)
	return s
}

var globalInterner = newInterner()

// Intern returns a deduplicated copy of s for use as a Name's text.
func Intern(s string) string {
	return globalInterner.intern(s)
}
