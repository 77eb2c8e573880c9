package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateWindow struct {
	count   int
	started time.Time
}

// RateLimit caps requests per client IP inside a fixed window. Counters for
// expired windows are reset lazily on the next request from that IP.
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	windows := make(map[string]*rateWindow)

	return func(ctx *gin.Context) {
		ip := ctx.ClientIP()
		now := time.Now()

		mu.Lock()
		w, ok := windows[ip]
		if !ok || now.Sub(w.started) >= window {
			w = &rateWindow{started: now}
			windows[ip] = w
		}
		w.count++
		exceeded := w.count > max
		mu.Unlock()

		if exceeded {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		ctx.Next()
	}
}
