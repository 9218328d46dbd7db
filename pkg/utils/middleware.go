package utils

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// In-memory per-IP counters for rate limiting.
var (
	rateMu           sync.Mutex
	requestCounts    = make(map[string]int)
	lastRequestTimes = make(map[string]time.Time)
)

// RateLimitInterval is the window after which a client's counter resets.
var RateLimitInterval = time.Minute

// RateLimitMaxRequests is the number of requests allowed per window.
var RateLimitMaxRequests = 100

// RateLimitMiddleware protects endpoints from abuse
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		currentTime := time.Now()

		rateMu.Lock()
		if currentTime.Sub(lastRequestTimes[clientIP]) > RateLimitInterval {
			requestCounts[clientIP] = 0
			lastRequestTimes[clientIP] = currentTime
		}
		requestCounts[clientIP]++
		over := requestCounts[clientIP] > RateLimitMaxRequests
		rateMu.Unlock()

		if over {
			SendErrorResponse(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
