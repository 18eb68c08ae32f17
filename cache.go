package main

import (
	"sync"

	"github.com/dgraph-io/ristretto"
)

var (
	// caches provides a collection of named caches for the lookup layers
	// (mimetypes, reverse DNS) to store their results in.
	caches = make(map[string]*ristretto.Cache)

	cacheLock sync.RWMutex
)

// getCache gets or creates a cache with the specified name, and sets its capacity.
func getCache(name string, capacity int64) *ristretto.Cache {
	cacheLock.RLock()
	c, ok := caches[name]
	cacheLock.RUnlock()

	if ok {
		c.UpdateMaxCost(capacity)
		return c
	}

	cacheLock.Lock()
	defer cacheLock.Unlock()

	// It's possible that another goroutine has created the cache by now.
	// If so, we don't want to create another one.
	c, ok = caches[name]
	if ok {
		c.UpdateMaxCost(capacity)
		return c
	}

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: capacity * 10,
		MaxCost:     capacity,
		BufferItems: 64,
	})
	if err != nil {
		panic(err)
	}

	caches[name] = c
	return c
}
