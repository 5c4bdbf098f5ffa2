package progress

import (
	"testing"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCache_SameRevisionReturnsMemoizedSlice(t *testing.T) {
	cache := NewCache()
	tasks := testutil.OneTaskPerCategory("Markha Valley Trek", "Ladakh")

	first := cache.Categories(1, tasks, "Markha Valley Trek", defaultScope)
	second := cache.Categories(1, tasks, "Markha Valley Trek", defaultScope)
	assert.Equal(t, first, second)

	// Mutating the tasks without a revision bump does not recompute; the
	// store bumps the revision on every apply, so this never happens live.
	tasks[0].InputValue = "done"
	stale := cache.Categories(1, tasks, "Markha Valley Trek", defaultScope)
	assert.Equal(t, first, stale)
}

func TestCache_RevisionBumpRecomputes(t *testing.T) {
	cache := NewCache()
	tasks := testutil.OneTaskPerCategory("Markha Valley Trek", "Ladakh")

	before := findCategory(t, cache.Categories(1, tasks, "Markha Valley Trek", defaultScope), tasks[0].Category)
	assert.Equal(t, 0, before.Completed)

	tasks[0].InputValue = "done"
	after := findCategory(t, cache.Categories(2, tasks, "Markha Valley Trek", defaultScope), tasks[0].Category)
	assert.Equal(t, 1, after.Completed)
}

func TestCache_DistinctSelectionsGetDistinctEntries(t *testing.T) {
	cache := NewCache()
	tasks := append(
		testutil.OneTaskPerCategory("Markha Valley Trek", "Ladakh"),
		testutil.OneTaskPerCategory("Hampta Pass Trek", "Himachal")...,
	)
	treks := []domain.Trek{
		testutil.NewTrek("Markha Valley Trek", "Ladakh"),
		testutil.NewTrek("Hampta Pass Trek", "Himachal"),
	}

	scoped := defaultScope
	scoped.BaseName = "Ladakh"

	all := cache.Treks(1, tasks, treks, defaultScope)
	ladakhOnly := cache.Treks(1, tasks, treks, scoped)

	assert.Equal(t, 6, findTrek(t, all, "Hampta Pass Trek").Total)
	assert.Equal(t, 0, findTrek(t, ladakhOnly, "Hampta Pass Trek").Total)
}

func TestCache_BasesMemoizedPerScope(t *testing.T) {
	cache := NewCache()
	tasks := testutil.OneTaskPerCategory("Markha Valley Trek", "Ladakh")

	first := cache.Bases(3, tasks, domain.BaseNames, defaultScope)
	second := cache.Bases(3, tasks, domain.BaseNames, defaultScope)
	assert.Equal(t, first, second)
	assert.Len(t, first, len(domain.BaseNames))
}
