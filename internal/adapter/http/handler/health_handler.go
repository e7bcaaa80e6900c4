package handler

import (
	"net/http"
	"sync"

	"roundup-saver/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// HealthCheck handles GET /health. Dependencies are pinged concurrently;
// any failure reports 503 with per-dependency detail.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	type depStatus struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}

	return func(c *gin.Context) {
		var (
			mu   sync.Mutex
			deps = make(map[string]depStatus, len(checkers))
		)

		var g errgroup.Group
		for _, checker := range checkers {
			checker := checker
			g.Go(func() error {
				st := depStatus{Status: "healthy"}
				if err := checker.Ping(c.Request.Context()); err != nil {
					st = depStatus{Status: "unhealthy", Error: err.Error()}
				}
				mu.Lock()
				deps[checker.Name()] = st
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		status := "healthy"
		httpCode := http.StatusOK
		for _, d := range deps {
			if d.Status != "healthy" {
				status = "degraded"
				httpCode = http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
