// Package registry holds the process-wide table of parsed buffers keyed by
// an integer buffer identifier the host editor owns. It is protected by
// one exclusive mutex covering the entire map: every public operation
// holds it for its duration, and a panic while the lock is held is
// recovered by discarding the map and installing a fresh one rather than
// leaving callers deadlocked or the table half-updated.
package registry

import (
	"sync"

	"github.com/xcdnlgd/go-pairs/buffer"
	"github.com/xcdnlgd/go-pairs/token"
)

// Registry is a process-wide, mutex-protected map from buffer identifier
// to parsed buffer. The zero value is ready to use.
type Registry struct {
	mu      sync.Mutex
	buffers map[int]*buffer.ParsedBuffer
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// withLock runs fn with r's mutex held and returns its result. If fn
// panics, the panic is recovered, the buffer map is replaced with a fresh
// empty one (Go mutexes don't poison themselves on a panicked critical
// section the way some other languages' do, so this recover-and-reset is
// a deliberate hand-rolled stand-in for that same availability-over-
// durability tradeoff), and the zero value is returned in its place. The
// panic itself is never surfaced to the caller; every public method
// signals failure only through its own absent-value/boolean return.
func withLock[T any](r *Registry, zero T, fn func() T) (result T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer func() {
		if recover() != nil {
			r.buffers = nil
			result = zero
		}
	}()
	return fn()
}

// ParseBuffer parses or re-parses bufferID's contents under filetype. The
// first call for a given bufferID runs a full parse; every later call
// re-parses only [startLine, oldEndLine), splicing the result in place
// (nil bounds mean "from the start" / "to the end", matching
// buffer.ParsedBuffer.ReparseRange). Reports false when filetype is
// unknown; the registry entry is left untouched in that case.
func (r *Registry) ParseBuffer(bufferID int, filetype string, lines []string, startLine, oldEndLine, newEndLine *int) bool {
	return withLock(r, false, func() bool {
		existing, ok := r.buffers[bufferID]
		if !ok {
			b, ok := buffer.Parse(filetype, lines)
			if !ok {
				return false
			}
			if r.buffers == nil {
				r.buffers = make(map[int]*buffer.ParsedBuffer)
			}
			r.buffers[bufferID] = b
			return true
		}
		return existing.ReparseRange(filetype, lines, startLine, oldEndLine, newEndLine)
	})
}

// Forget drops bufferID's parsed state, e.g. when the host closes it.
func (r *Registry) Forget(bufferID int) {
	withLock(r, struct{}{}, func() struct{} {
		delete(r.buffers, bufferID)
		return struct{}{}
	})
}

// LineMatches returns the matches on bufferID's line, or (nil, false) if
// the buffer or line is unknown.
func (r *Registry) LineMatches(bufferID, line int) ([]token.Match, bool) {
	return withLock(r, lineMatchesResult{}, func() lineMatchesResult {
		b, ok := r.buffers[bufferID]
		if !ok {
			return lineMatchesResult{}
		}
		matches, ok := b.LineMatches(line)
		return lineMatchesResult{matches, ok}
	}).unpack()
}

type lineMatchesResult struct {
	matches []token.Match
	ok      bool
}

func (res lineMatchesResult) unpack() ([]token.Match, bool) { return res.matches, res.ok }

// MatchAt returns the match at (line, col) in bufferID, or (zero, false)
// if the buffer is unknown or nothing is there.
func (r *Registry) MatchAt(bufferID, line, col int) (token.Match, bool) {
	return withLock(r, matchAtResult{}, func() matchAtResult {
		b, ok := r.buffers[bufferID]
		if !ok {
			return matchAtResult{}
		}
		m, ok := b.MatchAt(line, col)
		return matchAtResult{m, ok}
	}).unpack()
}

type matchAtResult struct {
	m  token.Match
	ok bool
}

func (res matchAtResult) unpack() (token.Match, bool) { return res.m, res.ok }

// MatchPair returns the opening and closing halves of the pair at (line,
// col) in bufferID, or (zero, zero, false).
func (r *Registry) MatchPair(bufferID, line, col int) (token.MatchWithLine, token.MatchWithLine, bool) {
	return withLock(r, matchPairResult{}, func() matchPairResult {
		b, ok := r.buffers[bufferID]
		if !ok {
			return matchPairResult{}
		}
		opening, closing, ok := b.MatchPair(line, col)
		return matchPairResult{opening, closing, ok}
	}).unpack()
}

type matchPairResult struct {
	opening, closing token.MatchWithLine
	ok               bool
}

func (res matchPairResult) unpack() (token.MatchWithLine, token.MatchWithLine, bool) {
	return res.opening, res.closing, res.ok
}
