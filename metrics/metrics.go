// Package metrics wires a tally scope to Prometheus and records request metrics.
package metrics

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uber-go/tally"
	promreporter "github.com/uber-go/tally/prometheus"
)

const reportInterval = time.Second

// NewPrometheusScope creates a root scope reported through a Prometheus registry.
// The returned handler serves the registry in the exposition format.
func NewPrometheusScope(prefix string) (tally.Scope, io.Closer, http.Handler) {
	reporter := promreporter.NewReporter(promreporter.Options{})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:         prefix,
		Tags:           map[string]string{},
		CachedReporter: reporter,
		Separator:      promreporter.DefaultSeparator,
	}, reportInterval)

	return scope, closer, reporter.HTTPHandler()
}

// Middleware counts requests and records their latency by route and status.
func Middleware(scope tally.Scope) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		tagged := scope.Tagged(map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})
		tagged.Counter("requests").Inc(1)
		tagged.Timer("latency").Record(time.Since(start))
	}
}
