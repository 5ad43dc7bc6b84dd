package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/internal/handler/prometheus"
	"github.com/jwalitptl/staff-directory/internal/middleware"
	"github.com/jwalitptl/staff-directory/pkg/auth"
	"github.com/jwalitptl/staff-directory/pkg/logger"
)

type Handler interface {
	RegisterRoutes(gin.IRouter)
}

type RouterConfig struct {
	Mode          string
	RateLimit     rate.Limit
	RateBurst     int
	CORSConfig    middleware.CORSConfig
	MaxBodySize   int64
	MetricsPath   string
	Responder     handler.Responder
	Tokens        *auth.TokenService
	Logger        *logger.Logger
	Metrics       *prometheus.Handler
	Health        Handler
	FeatureRoutes []Handler
}

type Router struct {
	engine *gin.Engine
	config RouterConfig
}

func NewRouter(config RouterConfig) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = middleware.DefaultMaxBodySize
	}
	middleware.RegisterValidators()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	r := &Router{
		engine: engine,
		config: config,
	}

	// Add core middlewares
	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(config.Logger),
		middleware.Logger(config.Logger),
	)
	if config.Metrics != nil {
		engine.Use(config.Metrics.Middleware())
	}
	engine.Use(
		middleware.CORS(config.CORSConfig),
		middleware.SizeLimit(config.MaxBodySize),
	)

	if config.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("Route not found"))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handler.NewErrorResponse("Method not allowed"))
	})

	return r
}

// Setup registers every route. Feature routes sit at the root, without a version prefix.
func (r *Router) Setup() {
	if r.config.Health != nil {
		r.config.Health.RegisterRoutes(r.engine)
	}
	if r.config.Metrics != nil && r.config.MetricsPath != "" {
		r.engine.GET(r.config.MetricsPath, r.config.Metrics.Handler())
	}

	api := r.engine.Group("")
	if r.config.Tokens != nil {
		api.Use(middleware.ActingEmployee(r.config.Tokens, r.config.Responder))
	}
	for _, h := range r.config.FeatureRoutes {
		h.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
