package usage_test

import (
	"sync"
	"testing"

	"github.com/germanamz/analyst/pkg/modeladapter/usage"
	"github.com/stretchr/testify/assert"
)

func TestTokenCount_Total(t *testing.T) {
	tc := usage.TokenCount{InputTokens: 100, OutputTokens: 50, ThoughtTokens: 25}
	assert.Equal(t, 175, tc.Total())
	assert.Equal(t, 0, usage.TokenCount{}.Total())
}

func TestTokenCount_String(t *testing.T) {
	tc := usage.TokenCount{InputTokens: 3, OutputTokens: 2, ThoughtTokens: 1}
	assert.Equal(t, "in=3 out=2 thoughts=1", tc.String())
}

func TestTracker_Last(t *testing.T) {
	var tr usage.Tracker

	_, ok := tr.Last()
	assert.False(t, ok)

	tr.Add(usage.TokenCount{InputTokens: 10, OutputTokens: 5})
	tr.Add(usage.TokenCount{InputTokens: 20, OutputTokens: 10})

	tc, ok := tr.Last()
	assert.True(t, ok)
	assert.Equal(t, usage.TokenCount{InputTokens: 20, OutputTokens: 10}, tc)
	assert.Equal(t, 2, tr.Count())
}

func TestTracker_Sum(t *testing.T) {
	var tr usage.Tracker

	tr.Add(usage.TokenCount{InputTokens: 10, OutputTokens: 5, ThoughtTokens: 1})
	tr.Add(usage.TokenCount{InputTokens: 20, OutputTokens: 10, ThoughtTokens: 2})

	assert.Equal(t, usage.TokenCount{InputTokens: 30, OutputTokens: 15, ThoughtTokens: 3}, tr.Sum())
}

func TestTracker_ConcurrentAdd(t *testing.T) {
	var tr usage.Tracker
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Add(usage.TokenCount{InputTokens: 1, OutputTokens: 1})
		}()
	}

	wg.Wait()

	assert.Equal(t, 50, tr.Count())
	assert.Equal(t, 100, tr.Sum().Total())
}
