// router.go - Route table for the API

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"time"     // Time handling

	"go-campus-backend/middleware" // Auth and rate limiting

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// RouterOptions holds the ingress settings that are not handler dependencies.
type RouterOptions struct {
	CORSOrigins []string
	AuthLimiter *middleware.RateLimiter // nil disables limiting
}

// NewRouter wires middleware and every route. Register and login are the
// only routes reachable without a token.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New() // Create a new Gin router (web server)
	r.Use(gin.Recovery(), middleware.RequestLogger(h.log), cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)})
	})

	// Public routes (no authentication required)
	public := r.Group("/api/auth", middleware.RateLimit(opts.AuthLimiter))
	{
		public.POST("/register", h.Register)
		public.POST("/login", h.Login)
	}

	// Protected routes (require a valid token)
	api := r.Group("/api", middleware.AuthMiddleware(h.tokens))
	{
		api.GET("/auth", h.RefreshToken)
		api.DELETE("/auth", h.DeleteProfile)
		api.GET("/auth/profile", h.Profile)

		api.GET("/questions", h.ListQuestions)
		api.POST("/questions", h.CreateQuestion)
		api.DELETE("/questions/:id", h.DeleteQuestion)

		api.GET("/projects", h.ListProjects)
		api.POST("/projects", h.CreateProject)
		api.DELETE("/projects/:id", h.DeleteProject)

		api.GET("/comments/:entityId", h.ListComments)
		api.POST("/comments/:entityId", h.CreateComment)
		api.DELETE("/comments/:entityId/:commentId", h.DeleteComment)

		api.GET("/colleagues", h.ListColleagues)
		api.GET("/colleagues/:id", h.GetColleague)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	cfg.AddAllowHeaders(middleware.TokenHeader, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
