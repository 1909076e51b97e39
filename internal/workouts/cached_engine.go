package workouts

import (
	"context"
	"encoding/json"

	"github.com/2beens/liftstats/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour              = 60 * 60
	defaultCacheExpire   = oneHour * 24
	defaultCacheSizeMBs  = 10
	minFreecacheSizeByte = 512 * 1024
)

// CachedEngine memoises query results. The snapshot never changes after
// load, so entries only go away on expiry or eviction.
type CachedEngine struct {
	engine        *Engine
	cache         *freecache.Cache
	expireSeconds int
	metrics       *metrics.Manager
}

// NewCachedEngine wraps engine with a cache of cacheSize bytes.
// Non-positive values fall back to defaults.
func NewCachedEngine(engine *Engine, cacheSize, expireSeconds int) *CachedEngine {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSizeMBs * 1024 * 1024
	}
	if cacheSize < minFreecacheSizeByte {
		cacheSize = minFreecacheSizeByte
	}
	if expireSeconds <= 0 {
		expireSeconds = defaultCacheExpire
	}
	return &CachedEngine{
		engine:        engine,
		cache:         freecache.NewCache(cacheSize),
		expireSeconds: expireSeconds,
		metrics:       engine.metrics,
	}
}

func (c *CachedEngine) TotalWeight(ctx context.Context, filter *Filter) (int, error) {
	var total int
	if c.get(OpTotalWeight, filter, &total) {
		return total, nil
	}
	total, err := c.engine.TotalWeight(ctx, filter)
	if err != nil {
		return 0, err
	}
	c.set(OpTotalWeight, filter, total)
	return total, nil
}

func (c *CachedEngine) TotalWeightByMonth(ctx context.Context, filter *Filter) ([]MonthTotal, error) {
	var rows []MonthTotal
	if c.get(OpTotalWeightByMonth, filter, &rows) {
		return rows, nil
	}
	rows, err := c.engine.TotalWeightByMonth(ctx, filter)
	if err != nil {
		return nil, err
	}
	c.set(OpTotalWeightByMonth, filter, rows)
	return rows, nil
}

func (c *CachedEngine) Weight(ctx context.Context, filter *Filter) ([]int, error) {
	var weights []int
	if c.get(OpWeight, filter, &weights) {
		return weights, nil
	}
	weights, err := c.engine.Weight(ctx, filter)
	if err != nil {
		return nil, err
	}
	c.set(OpWeight, filter, weights)
	return weights, nil
}

func (c *CachedEngine) MaxWeight(ctx context.Context, filter *Filter) (int, bool, error) {
	weights, err := c.Weight(ctx, filter)
	if err != nil {
		return 0, false, err
	}
	maxWeight, found := heaviest(weights)
	return maxWeight, found, nil
}

// EntryCount is the number of cached results.
func (c *CachedEngine) EntryCount() int64 {
	return c.cache.EntryCount()
}

func cacheKey(op string, filter *Filter) []byte {
	return []byte(op + "::" + filter.Key())
}

func (c *CachedEngine) get(op string, filter *Filter, dst any) bool {
	cached, err := c.cache.Get(cacheKey(op, filter))
	if err != nil {
		c.countLookup(op, "miss")
		return false
	}
	if err := json.Unmarshal(cached, dst); err != nil {
		log.Errorf("failed to unmarshal cached [%s] result: %s", op, err)
		c.countLookup(op, "miss")
		return false
	}
	c.countLookup(op, "hit")
	return true
}

func (c *CachedEngine) set(op string, filter *Filter, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal [%s] result for cache: %s", op, err)
		return
	}
	if err := c.cache.Set(cacheKey(op, filter), valueBytes, c.expireSeconds); err != nil {
		log.Errorf("failed to write [%s] result to cache: %s", op, err)
	}
}

func (c *CachedEngine) countLookup(op, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterQueryCache.WithLabelValues(op, result).Inc()
}
