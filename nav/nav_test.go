package nav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"assetops/backend"
)

type harness struct {
	store    *Store
	router   *Router
	resolver *Resolver
	signals  *Signals
}

func newHarness(t *testing.T, start ViewID) *harness {
	t.Helper()
	store := NewStore(start)
	signals := NewSignals()
	h := &harness{
		store:    store,
		router:   NewRouter(store, signals),
		resolver: NewResolver(store),
		signals:  signals,
	}
	require.Equal(t, start, store.CurrentView())
	return h
}

func excavator() *backend.Asset {
	return &backend.Asset{
		ID:         "AT-001",
		Name:       "Excavator",
		Type:       "heavy",
		Status:     backend.AssetActive,
		SiteID:     "ST-001",
		Battery:    82,
		Tags:       []string{"tracked"},
		Attributes: map[string]string{"serial": "EX-77"},
		LastSeen:   time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	}
}

func forklift() *backend.Asset {
	return &backend.Asset{ID: "AT-002", Name: "Forklift 7", Status: backend.AssetIdle, SiteID: "ST-001"}
}

func northYard() *backend.Site {
	return &backend.Site{ID: "ST-001", Name: "North Yard", Manager: "r.ortiz"}
}

func harborDepot() *backend.Site {
	return &backend.Site{ID: "ST-002", Name: "Harbor Depot"}
}
