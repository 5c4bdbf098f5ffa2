package progress

import (
	"github.com/alexanderramin/trekops/internal/domain"
)

type cacheKey struct {
	scope    Scope
	trekName string
	view     string
}

// Cache memoizes aggregation results per (store revision, selection)
// pair. Any entry computed at an older revision is discarded wholesale on
// the next lookup, so a stale result can never be served across mutations.
// The cache is not safe for concurrent use; the UI event loop is the only
// caller.
type Cache struct {
	rev        uint64
	categories map[cacheKey][]CategorySummary
	treks      map[cacheKey][]TrekSummary
	bases      map[cacheKey][]BaseSummary
}

func NewCache() *Cache {
	c := &Cache{}
	c.reset(0)
	return c
}

func (c *Cache) reset(rev uint64) {
	c.rev = rev
	c.categories = make(map[cacheKey][]CategorySummary)
	c.treks = make(map[cacheKey][]TrekSummary)
	c.bases = make(map[cacheKey][]BaseSummary)
}

func (c *Cache) sync(rev uint64) {
	if rev != c.rev {
		c.reset(rev)
	}
}

// Categories returns the memoized category rollup for a trek, computing it
// on first request at this revision.
func (c *Cache) Categories(rev uint64, tasks []domain.Task, trekName string, scope Scope) []CategorySummary {
	c.sync(rev)
	key := cacheKey{scope: scope, trekName: trekName, view: "categories"}
	if got, ok := c.categories[key]; ok {
		return got
	}
	out := CategoryProgress(tasks, trekName, scope)
	c.categories[key] = out
	return out
}

// Treks returns the memoized per-trek rollup.
func (c *Cache) Treks(rev uint64, tasks []domain.Task, treks []domain.Trek, scope Scope) []TrekSummary {
	c.sync(rev)
	key := cacheKey{scope: scope, view: "treks"}
	if got, ok := c.treks[key]; ok {
		return got
	}
	out := TrekProgress(tasks, treks, scope)
	c.treks[key] = out
	return out
}

// Bases returns the memoized per-base activity rollup.
func (c *Cache) Bases(rev uint64, tasks []domain.Task, baseNames []string, scope Scope) []BaseSummary {
	c.sync(rev)
	key := cacheKey{scope: scope, view: "bases"}
	if got, ok := c.bases[key]; ok {
		return got
	}
	out := BaseProgress(tasks, baseNames, scope)
	c.bases[key] = out
	return out
}
