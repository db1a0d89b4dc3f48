package breadcrumb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assetops/nav"
)

func TestVisit(t *testing.T) {
	tr := New(4)
	tr.Visit(nav.ViewDashboard)
	tr.Visit(nav.ViewInventory)
	tr.Visit(nav.ViewAssetDetails)
	assert.Equal(t, []nav.ViewID{nav.ViewDashboard, nav.ViewInventory, nav.ViewAssetDetails}, tr.Views())

	// Going back cuts the trail instead of growing it.
	tr.Visit(nav.ViewInventory)
	assert.Equal(t, []nav.ViewID{nav.ViewDashboard, nav.ViewInventory}, tr.Views())

	v, ok := tr.Peek()
	assert.True(t, ok)
	assert.Equal(t, nav.ViewInventory, v)
}

func TestVisitDepth(t *testing.T) {
	tr := New(2)
	tr.Visit(nav.ViewSites)
	tr.Visit(nav.ViewSiteDetails)
	tr.Visit(nav.ViewCreateGeofence)
	assert.Equal(t, []nav.ViewID{nav.ViewSiteDetails, nav.ViewCreateGeofence}, tr.Views())

	tr.Visit(nav.ViewDashboard)
	assert.Equal(t, []nav.ViewID{nav.ViewDashboard}, tr.Views())
	assert.Equal(t, 1, New(0).depth)
}

func TestViewsIsACopy(t *testing.T) {
	tr := New(3)
	tr.Visit(nav.ViewMap)
	tr.Views()[0] = nav.ViewHelp
	v, _ := tr.Peek()
	assert.Equal(t, nav.ViewMap, v)

	tr.Reset()
	_, ok := tr.Peek()
	assert.False(t, ok)
	assert.Zero(t, tr.Len())
}

func TestRenderCutsFromTheLeft(t *testing.T) {
	tr := New(6)
	tr.Visit(nav.ViewDashboard)
	tr.Visit(nav.ViewInventory)
	tr.Visit(nav.ViewAssetDetails)

	wide := tr.Render(200)
	assert.Contains(t, wide, "Dashboard")
	assert.Contains(t, wide, "Asset Details")

	narrow := tr.Render(20)
	assert.NotContains(t, narrow, "Dashboard")
	assert.Contains(t, narrow, "Asset Details")
}
