package testutil

import (
	"sync"
	"sync/atomic"

	"github.com/MGTheTrain/crypto-services/internal/pkg/config"
)

// CountingProvider is a config.Provider that records how often each path was resolved.
type CountingProvider struct {
	mu     sync.RWMutex
	values config.MapProvider
	calls  sync.Map // path -> *atomic.Int64
}

// NewCountingProvider creates a CountingProvider serving values.
func NewCountingProvider(values map[string]interface{}) *CountingProvider {
	m := make(config.MapProvider, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &CountingProvider{values: m}
}

// Get returns the value stored under key and counts the lookup.
func (p *CountingProvider) Get(key string) interface{} {
	counter, _ := p.calls.LoadOrStore(key, new(atomic.Int64))
	counter.(*atomic.Int64).Add(1)

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values.Get(key)
}

// Set stores value under key.
func (p *CountingProvider) Set(key string, value interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
}

// Calls returns how many times key was resolved.
func (p *CountingProvider) Calls(key string) int64 {
	counter, ok := p.calls.Load(key)
	if !ok {
		return 0
	}
	return counter.(*atomic.Int64).Load()
}
