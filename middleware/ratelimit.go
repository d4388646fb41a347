package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mtx      sync.RWMutex
)

func getVisitor(ip string, r rate.Limit, burst int) *rate.Limiter {
	mtx.RLock()
	v, exists := visitors[ip]
	mtx.RUnlock()

	if !exists {
		limiter := rate.NewLimiter(r, burst)
		mtx.Lock()
		visitors[ip] = &visitor{limiter, time.Now()}
		mtx.Unlock()
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// RateLimit throttles requests per client IP. Used on the OTP endpoints so
// a single caller cannot burn through the SMS and verification quotas.
func RateLimit(r rate.Limit, burst int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limiter := getVisitor(c.IP(), r, burst)
		if !limiter.Allow() {
			return JsonResponse(c, fiber.StatusTooManyRequests, false, "Too many requests. Try again later.", nil)
		}
		return c.Next()
	}
}

func init() {
	// Drop visitors idle for over an hour
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			mtx.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > time.Hour {
					delete(visitors, ip)
				}
			}
			mtx.Unlock()
		}
	}()
}
