package watch

import (
	"sync"

	"golang.org/x/time/rate"
)

// pathLimiter throttles re-analysis per file path. Editors and atomic-save
// tools emit bursts of write events for a single save; the limiter collapses
// those into at most a few analyses per second per path.
type pathLimiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func newPathLimiter(eventsPerSecond float64, burst int) *pathLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &pathLimiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(eventsPerSecond),
		defaultBurst: burst,
	}
}

// Allow reports whether an event for the path may trigger analysis now.
func (l *pathLimiter) Allow(path string) bool {
	return l.get(path).Allow()
}

func (l *pathLimiter) get(path string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[path]
	if !exists {
		limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
		l.limiters[path] = limiter
	}
	return limiter
}
