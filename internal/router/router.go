package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	ListOwnerEvents(c *ginext.Context)
	ListAllEvents(c *ginext.Context)
	OwnerDashboard(c *ginext.Context)
	ReviewerDashboard(c *ginext.Context)
	AcceptSubmission(c *ginext.Context)
	DeclineSubmission(c *ginext.Context)
	RequestCancellation(c *ginext.Context)
	DecideCancellation(c *ginext.Context)
	RequestCompletion(c *ginext.Context)
	DecideCompletion(c *ginext.Context)
	SeedEvents(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Owner surface
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListOwnerEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/cancellation", h.RequestCancellation)
		api.POST("/events/:id/completion/decision", h.DecideCompletion)
		api.GET("/dashboard", h.OwnerDashboard)

		// Reviewer surface
		admin := api.Group("/admin")
		{
			admin.GET("/events", h.ListAllEvents)
			admin.GET("/dashboard", h.ReviewerDashboard)
			admin.POST("/events/:id/accept", h.AcceptSubmission)
			admin.POST("/events/:id/decline", h.DeclineSubmission)
			admin.POST("/events/:id/cancellation/decision", h.DecideCancellation)
			admin.POST("/events/:id/completion", h.RequestCompletion)
			admin.POST("/seed", h.SeedEvents)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
