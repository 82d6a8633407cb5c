package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playbook-backend/internal/playbooks"
	"playbook-backend/internal/shared/config"
	"playbook-backend/internal/shared/metrics"
	"playbook-backend/internal/shared/server/middleware"
	"playbook-backend/internal/shared/server/respond"
)

// Rate limit groups.
const (
	GroupGenerate = "GENERATE"
	GroupParse    = "PARSE"
)

// RouterDeps carries handlers and shared state for router construction.
type RouterDeps struct {
	Config          config.Config
	PlaybookHandler *playbooks.Handler
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if deps.Config.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = deps.Config.MaxUploadBytes
	}

	rule := middleware.RateLimitRule{Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst}
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    map[string]middleware.RateLimitRule{GroupGenerate: rule, GroupParse: rule},
			GroupFor: rateLimitGroup,
			Limiter:  deps.Limiter,
		}),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	api := r.Group("/api/v1")
	if deps.PlaybookHandler != nil {
		deps.PlaybookHandler.RegisterRoutes(api)
	}
	api.GET("/metrics", metrics.Handler())

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/api/v1/playbooks":
		return GroupGenerate
	case "/api/v1/reports/parse":
		return GroupParse
	default:
		return ""
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
