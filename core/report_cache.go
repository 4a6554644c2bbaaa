package core

import (
	"cellframe/scalar"
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// ReportCache memoises read-only reports. Keys carry the column id and
// version, so a mutated or replaced column never hits a stale entry.
type ReportCache struct {
	cacheEnabled bool
	rateCache    *ristretto.Cache
}

func NewReportCache(cacheEnabled bool) (*ReportCache, error) {
	rateCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 22,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &ReportCache{
		cacheEnabled: cacheEnabled,
		rateCache:    rateCache,
	}, nil
}

func rateKey(column *Column, kind scalar.Kind, points int) string {
	return fmt.Sprintf("%d/%d/%s/%d", column.id, column.version, kind, points)
}

func (store *ReportCache) GetRateOfChange(column *Column, kind scalar.Kind, points int) ([]RatePoint, bool) {
	if store == nil || !store.cacheEnabled {
		return nil, false
	}
	series, found := store.rateCache.Get(rateKey(column, kind, points))
	if !found {
		return nil, false
	}
	cached := series.([]RatePoint)
	out := make([]RatePoint, len(cached))
	copy(out, cached)
	return out, true
}

func (store *ReportCache) PutRateOfChange(column *Column, kind scalar.Kind, points int, series []RatePoint) {
	if store == nil || !store.cacheEnabled {
		return
	}
	store.rateCache.Set(rateKey(column, kind, points), series, int64(len(series))+1)
}

func (store *ReportCache) Close() {
	if store == nil {
		return
	}
	store.rateCache.Close()
}
