// Package rate_limiter throttles the credential endpoints per client
// IP so password guessing against storefront accounts stays slow.
package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// One token per second with a burst of 3 covers a shopper fumbling a
// login form; anything faster is a script.
const (
	visitorRate  = rate.Limit(1)
	visitorBurst = 3

	visitorIdleTimeout = 5 * time.Minute
	cleanupInterval    = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	mu       sync.Mutex
	visitors = make(map[string]*visitor)
)

// GetVisitor returns the limiter for ip, creating one on first sight.
func GetVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, ok := visitors[ip]
	if !ok {
		v = &visitor{
			limiter:  rate.NewLimiter(visitorRate, visitorBurst),
			lastSeen: time.Now(),
		}
		visitors[ip] = v
		return v.limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartVisitorCleanupLoop drops visitors idle longer than
// visitorIdleTimeout. Run it in its own goroutine.
func StartVisitorCleanupLoop() {
	for {
		time.Sleep(cleanupInterval)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > visitorIdleTimeout {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}

// CleanupAllVisitors resets the visitor table, refilling every bucket.
func CleanupAllVisitors() {
	mu.Lock()
	visitors = make(map[string]*visitor)
	mu.Unlock()
}
