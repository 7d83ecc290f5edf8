package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/logger"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/metrics"
	"go.uber.org/zap"
)

const toursCacheKey = "tours"

// ToursCache keeps the static tour catalog in memory so the catalog endpoint
// does not hit the filesystem on every request. The catalog file is the source
// of truth; the cache re-reads it after the TTL expires.
type ToursCache struct {
	cache    *gocache.Cache
	dataPath string
	mu       sync.RWMutex
	ready    bool
}

// NewToursCache creates a tours catalog cache over the given resource file.
func NewToursCache(dataPath string, ttlSeconds int) *ToursCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &ToursCache{
		cache:    gocache.New(ttl, time.Minute),
		dataPath: dataPath,
	}
}

// Initialize performs initial cache population (synchronous, blocks until ready).
// Should be called during application startup before accepting requests.
func (tc *ToursCache) Initialize() error {
	logger.Info("Initializing tours cache...", zap.String("path", tc.dataPath))
	if _, err := tc.refresh(); err != nil {
		logger.Error("Failed to initialize tours cache", zap.Error(err))
		return err
	}

	tc.mu.Lock()
	tc.ready = true
	tc.mu.Unlock()

	logger.Info("Tours cache initialized successfully")
	return nil
}

// IsReady returns true if the cache has been successfully initialized
func (tc *ToursCache) IsReady() bool {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.ready
}

// Get retrieves the catalog from cache, re-reading the file on a miss.
func (tc *ToursCache) Get() (json.RawMessage, error) {
	if !tc.IsReady() {
		return nil, fmt.Errorf("tours cache not initialized")
	}

	if data, found := tc.cache.Get(toursCacheKey); found {
		metrics.CacheHits.WithLabelValues("tours").Inc()
		raw, ok := data.(json.RawMessage)
		if !ok {
			logger.Error("Invalid tours cache data type")
			tc.cache.Delete(toursCacheKey)
			return nil, fmt.Errorf("invalid cache data type")
		}
		return raw, nil
	}

	metrics.CacheMisses.WithLabelValues("tours").Inc()
	return tc.refresh()
}

func (tc *ToursCache) refresh() (json.RawMessage, error) {
	raw, err := os.ReadFile(tc.dataPath)
	if err != nil {
		return nil, fmt.Errorf("read tours data: %w", err)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("tours data is not valid JSON: %s", tc.dataPath)
	}

	data := json.RawMessage(raw)
	tc.cache.Set(toursCacheKey, data, gocache.DefaultExpiration)
	return data, nil
}
