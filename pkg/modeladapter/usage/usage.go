// Package usage records token consumption reported by model providers.
package usage

import (
	"fmt"
	"sync"
)

// TokenCount holds the token counts reported for a single generation call.
// ThoughtTokens is only populated by models that bill reasoning separately.
type TokenCount struct {
	InputTokens   int
	OutputTokens  int
	ThoughtTokens int
}

// Total returns the sum of all counted tokens.
func (tc TokenCount) Total() int {
	return tc.InputTokens + tc.OutputTokens + tc.ThoughtTokens
}

func (tc TokenCount) String() string {
	return fmt.Sprintf("in=%d out=%d thoughts=%d", tc.InputTokens, tc.OutputTokens, tc.ThoughtTokens)
}

// Tracker accumulates token counts across calls. The zero value is ready to
// use and it is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	entries []TokenCount
}

// Add records a token count entry.
func (t *Tracker) Add(tc TokenCount) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, tc)
}

// Last returns the most recent entry. The bool is false when nothing has been
// recorded yet.
func (t *Tracker) Last() (TokenCount, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.entries) == 0 {
		return TokenCount{}, false
	}

	return t.entries[len(t.entries)-1], true
}

// Sum returns the aggregate of every recorded entry.
func (t *Tracker) Sum() TokenCount {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sum TokenCount
	for _, e := range t.entries {
		sum.InputTokens += e.InputTokens
		sum.OutputTokens += e.OutputTokens
		sum.ThoughtTokens += e.ThoughtTokens
	}

	return sum
}

// Count returns the number of recorded entries.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
