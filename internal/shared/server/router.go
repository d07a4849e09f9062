package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/config"
	"resume-parser/internal/parsing"
	"resume-parser/internal/services/health"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/server/middleware"
	"resume-parser/internal/shared/server/respond"
)

// RouterDeps carries the handlers wired into the router.
type RouterDeps struct {
	Config       config.Config
	ParseHandler *parsing.Handler
	Health       *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 20},
				"PARSE":   {Rate: 1, Burst: 5},
			},
		}),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	if deps.ParseHandler != nil {
		deps.ParseHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitGroup assigns the stricter budget to the model-backed endpoints.
func rateLimitGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/parse", "/api/v1/parse/upload":
		return "PARSE"
	}
	return "DEFAULT"
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
