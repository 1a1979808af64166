package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Health and status endpoints
	r.GET("/health", handler.GetHealth)

	// Filtered feed export
	r.GET("/feeds/results.xml", handler.GetResultsFeed)

	api := r.Group("/api")
	{
		api.GET("/options", handler.GetOptions)
		api.GET("/results", handler.GetResults)
		api.GET("/trends", handler.GetTrends)
		api.GET("/history", handler.GetHistory)

		api.GET("/theme", handler.GetTheme)
		api.PUT("/theme", handler.PutTheme)
		api.POST("/theme/toggle", handler.ToggleTheme)

		api.POST("/sessions", handler.CreateSession)

		sessions := api.Group("/sessions/:id")
		sessions.GET("", handler.GetSession)
		sessions.DELETE("", handler.DeleteSession)
		sessions.POST("/tab", handler.SelectTab)
		sessions.POST("/sidebar/toggle", handler.ToggleSidebar)
		sessions.POST("/menu/toggle", handler.ToggleMenu)
		sessions.POST("/search", handler.Search)
		sessions.POST("/filters/:axis/:value", handler.ToggleFilter)
		sessions.DELETE("/filters/:axis", handler.ClearFilter)
		sessions.POST("/history/:entry/toggle", handler.ToggleHistoryEntry)
		sessions.POST("/history/:entry/rerun", handler.RerunHistoryEntry)
	}

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "MarketIntel AI",
			"version":     handler.version,
			"description": "Market research dashboard with sentiment and impact filtering",
			"endpoints": map[string]string{
				"health":   "/health",
				"options":  "/api/options",
				"results":  "/api/results?sentiment=<a,b>&impact=<v>&time_range=<v>",
				"trends":   "/api/trends?sentiment=<v>&impact=<v>&priority=<v>",
				"history":  "/api/history?sentiment=<a,b>&impact=<v>&open=<id,id>",
				"feed":     "/feeds/results.xml",
				"theme":    "/api/theme",
				"sessions": "/api/sessions",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
