package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"paranoid-users/internal/core/server"
	"paranoid-users/internal/transport/http/ez"
	mdw "paranoid-users/internal/transport/http/middleware"
)

type Options struct {
	RateRPS      float64
	RateBurst    int
	MaxInFlight  int64
	MaxBodyBytes int64
	Timeout      time.Duration
	CORSOrigins  []string
}

func (o Options) withDefaults() Options {
	if o.RateRPS <= 0 {
		o.RateRPS = 200
	}
	if o.RateBurst <= 0 {
		o.RateBurst = 400
	}
	if o.MaxInFlight <= 0 {
		o.MaxInFlight = 300
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	return o
}

// newEngine 两个进程共用的中间件栈
func newEngine(l *zap.Logger, name string, o Options, perIP bool) *gin.Engine {
	o = o.withDefaults()
	ez.RegisterValidators()

	r := server.NewRouter(l, o.CORSOrigins)
	limit := mdw.RateLimit(rate.Limit(o.RateRPS), o.RateBurst)
	if perIP {
		limit = mdw.RateLimitPerIP(rate.Limit(o.RateRPS), o.RateBurst)
	}
	r.Use(
		mdw.RequestID(),
		limit,
		mdw.ConcurrencyLimit(o.MaxInFlight),
		mdw.MaxBodyBytes(o.MaxBodyBytes),
		mdw.Timeout(o.Timeout),
		mdw.Metrics(name),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())
	return r
}
