package middleware

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// Latency suspends the request for d before the handler runs, emulating the
// upstream call a real backend would make. Set SIMULATE_LATENCY=off to
// disable (tests, local development).
func Latency(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("SIMULATE_LATENCY") != "off" {
			time.Sleep(d)
		}
		c.Next()
	}
}
