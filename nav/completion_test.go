package nav

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"assetops/backend"
)

func TestCompletionDeliversOnce(t *testing.T) {
	var got []string
	c := NewCompletion(func(s string) { got = append(got, s) })

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.True(t, c.Pending())
	assert.True(t, c.Deliver("first"))
	assert.False(t, c.Deliver("second"))
	assert.False(t, c.Pending())

	c.Cancel()
	assert.Equal(t, []string{"first"}, got)
}

func TestCompletionCancelledNeverFires(t *testing.T) {
	called := false
	c := NewCompletion(func(int) { called = true })

	c.Cancel()
	assert.False(t, c.Pending())
	assert.False(t, c.Deliver(1))
	assert.False(t, called)
}

func TestNilCompletionIsInert(t *testing.T) {
	var c *Completion[backend.AssetUpdate]
	assert.False(t, c.Deliver(backend.AssetUpdate{}))
	assert.False(t, c.Pending())
	assert.Equal(t, uuid.Nil, c.ID())
	c.Cancel()
}

func TestCompletionConcurrentDeliver(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	c := NewCompletion(func(int) { calls.Add(1) })

	var wg sync.WaitGroup
	var wins atomic.Int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if c.Deliver(i) {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), wins.Load())
}

// A check-out followed by a check-in: each trip carries its own completion
// and each origin hears back exactly once.
func TestCheckOutCheckInRoundTrip(t *testing.T) {
	h := newHarness(t, ViewInventory)
	h.router.NavigateToAssetDetails(excavator())

	var outCalls, inCalls int
	trip := func(mode CheckMode, counter *int, u backend.AssetUpdate) {
		sel, ok := Get[AssetSelection](h.store)
		require.True(t, ok)
		h.router.NavigateToCheckInOut(&CheckInOut{
			AssetID:       sel.Asset.ID,
			AssetName:     sel.Asset.Name,
			CurrentStatus: sel.Asset.Status,
			Mode:          mode,
			OnComplete: NewCompletion(func(u backend.AssetUpdate) {
				*counter++
				h.router.ApplyAssetUpdate(sel.Asset.ID, u)
			}),
		})

		req, ok := Get[CheckInOut](h.store)
		require.True(t, ok)
		assert.Equal(t, mode, req.Mode)

		// Confirm, then the screen tears down and cancels whatever is left.
		req.OnComplete.Deliver(u)
		require.Equal(t, ViewAssetDetails, h.resolver.BackFromCheckInOut())
		req.OnComplete.Cancel()
		assert.False(t, req.OnComplete.Deliver(u))
	}

	trip(CheckOut, &outCalls, backend.AssetUpdate{Status: backend.AssetCheckedOut, AssignedTo: "crew-4"})
	sel, _ := Get[AssetSelection](h.store)
	assert.Equal(t, backend.AssetCheckedOut, sel.Asset.Status)
	assert.Equal(t, "crew-4", sel.Asset.AssignedTo)

	trip(CheckIn, &inCalls, backend.AssetUpdate{Status: backend.AssetActive})
	sel, _ = Get[AssetSelection](h.store)
	assert.Equal(t, backend.AssetActive, sel.Asset.Status)

	assert.Equal(t, 1, outCalls)
	assert.Equal(t, 1, inCalls)
}

func TestSignalsIgnoreEmptyHighlight(t *testing.T) {
	s := NewSignals()
	s.Highlight("")
	_, ok := s.Highlighted()
	assert.False(t, ok)
}
