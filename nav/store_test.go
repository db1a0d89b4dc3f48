package nav

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore("")
	assert.Equal(t, ViewDashboard, s.CurrentView())
	assert.Empty(t, s.Snapshot().Slots)

	s = NewStore("no-such-view")
	assert.Equal(t, ViewDashboard, s.CurrentView(), "unknown start view falls back to dashboard")

	s = NewStore(ViewAlerts)
	assert.Equal(t, ViewAlerts, s.CurrentView())
}

func TestSetViewCommitsViewAndPatchTogether(t *testing.T) {
	s := NewStore(ViewDashboard)

	tr, err := s.SetView(ViewSiteDetails, NewPatch(SiteSelection{Site: *northYard()}))
	require.NoError(t, err)

	assert.Equal(t, ViewSiteDetails, s.CurrentView())
	assert.Equal(t, ViewDashboard, tr.From)
	assert.Equal(t, ViewSiteDetails, tr.To)
	assert.NotEqual(t, uuid.Nil, tr.ID)
	assert.Equal(t, []ContextKind{KindSelectedSite}, tr.Kinds)
	assert.Equal(t, tr, s.Last())

	site, ok := Get[SiteSelection](s)
	require.True(t, ok)
	assert.Equal(t, "ST-001", site.Site.ID)
}

func TestSetViewRejectsUnknownViewWithoutSideEffects(t *testing.T) {
	s := NewStore(ViewSites)
	_, err := s.SetView(ViewSiteDetails, NewPatch(SiteSelection{Site: *northYard()}))
	require.NoError(t, err)
	before := s.Snapshot()

	_, err = s.SetView("warp-drive", NewPatch(SiteSelection{Site: *harborDepot()}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownView))

	after := s.Snapshot()
	assert.Equal(t, before.View, after.View)
	assert.Equal(t, before.Slots, after.Slots, "failed commit must not leak the patch")
	assert.Equal(t, before.Last.ID, after.Last.ID)
}

func TestSetViewSameViewStillAppliesPatch(t *testing.T) {
	s := NewStore(ViewSiteDetails)

	tr, err := s.SetView(ViewSiteDetails, NewPatch(SiteTabSelection{Tab: SiteTabAlerts}))
	require.NoError(t, err)
	assert.Equal(t, tr.From, tr.To)

	tab, ok := Get[SiteTabSelection](s)
	require.True(t, ok)
	assert.Equal(t, SiteTabAlerts, tab.Tab)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewStore(ViewDashboard)
	_, err := s.SetView(ViewSiteDetails, NewPatch(SiteSelection{Site: *northYard()}))
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Slots[KindSelectedSite] = SiteSelection{Site: *harborDepot()}

	site, _ := Get[SiteSelection](s)
	assert.Equal(t, "ST-001", site.Site.ID)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := NewStore(ViewDashboard)

	var seen []ViewID
	unsubscribe := s.Subscribe(func(tr Transition) {
		// Listeners run outside the lock and may read the store.
		assert.Equal(t, tr.To, s.CurrentView())
		seen = append(seen, tr.To)
	})

	_, _ = s.SetView(ViewInventory, nil)
	_, _ = s.SetView(ViewMap, nil)
	unsubscribe()
	_, _ = s.SetView(ViewSites, nil)

	assert.Equal(t, []ViewID{ViewInventory, ViewMap}, seen)
}

func TestStoreConcurrentReaders(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewStore(ViewDashboard)
	views := []ViewID{ViewInventory, ViewMap, ViewSites, ViewAlerts}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if i%2 == 0 {
					_, _ = s.SetView(views[(i+j)%len(views)], NewPatch(SiteTabSelection{Tab: SiteTabAssets}))
					continue
				}
				snap := s.Snapshot()
				assert.True(t, snap.View.Valid())
			}
		}(i)
	}
	wg.Wait()
	assert.Contains(t, views, s.CurrentView())
}
