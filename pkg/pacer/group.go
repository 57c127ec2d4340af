package pacer

import (
	"sync"
)

// Group hands out limiters by key, all created from one configuration.
// Call sites sharing a key share a rate; distinct keys are paced
// independently. This is the pattern for throttling several endpoints of
// one service at the same per-endpoint rate.
type Group struct {
	mu       sync.Mutex
	config   Config
	limiters map[string]Limiter
}

// NewGroup creates a keyed limiter group and panics on invalid
// configuration.
func NewGroup(config Config) *Group {
	g, err := NewGroupSafe(config)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGroupSafe creates a keyed limiter group with validation that returns
// an error instead of panicking.
func NewGroupSafe(config Config) (*Group, error) {
	if _, err := config.interval(); err != nil {
		return nil, err
	}

	return &Group{
		config:   config,
		limiters: make(map[string]Limiter),
	}, nil
}

// Get returns the limiter for key, creating it from the group's
// configuration on first use. The same key always yields the same
// limiter instance.
func (g *Group) Get(key string) Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()

	limiter, ok := g.limiters[key]
	if !ok {
		// Config was validated at group construction.
		limiter = New(g.config)
		g.limiters[key] = limiter
	}
	return limiter
}

// Len returns the number of limiters created so far.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.limiters)
}

// Keys returns the keys of all limiters created so far.
func (g *Group) Keys() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	keys := make([]string, 0, len(g.limiters))
	for key := range g.limiters {
		keys = append(keys, key)
	}
	return keys
}
