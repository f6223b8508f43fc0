// Package server exposes the planner over a JSON HTTP API. Every
// mutation maps 1:1 onto a planner or service operation; the handlers
// hold no state of their own.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iwantdrugsxd/evea-sub002/internal/auth"
	"github.com/iwantdrugsxd/evea-sub002/internal/middleware"
	"github.com/iwantdrugsxd/evea-sub002/internal/service"
	"github.com/iwantdrugsxd/evea-sub002/internal/storage"
)

// Server wires the HTTP layer to the planner service.
type Server struct {
	planner *service.PlannerService
	store   storage.Store
	authn   *auth.Authenticator
	jwt     *auth.JWTManager
}

// New creates a server over the given collaborators.
func New(planner *service.PlannerService, store storage.Store, authn *auth.Authenticator, jwt *auth.JWTManager) *Server {
	return &Server{planner: planner, store: store, authn: authn, jwt: jwt}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)

	authed := api.Group("", middleware.RequireAuth(s.jwt))

	// Catalog (read-only).
	authed.GET("/event-types", s.listEventTypes)
	authed.GET("/categories", s.listCategories)
	authed.GET("/cards", s.listCards)
	authed.GET("/cards/:cardID/reviews", s.listReviews)

	// Sessions and the wizard.
	authed.POST("/sessions", s.openSession)
	sess := authed.Group("/sessions/:sessionID")
	sess.GET("", s.sessionState)
	sess.POST("/steps/next", s.nextStep)
	sess.POST("/steps/previous", s.previousStep)
	sess.POST("/steps/goto", s.goToStep)
	sess.POST("/steps/complete", s.completeStep)
	sess.PUT("/event-type", s.setEventType)
	sess.PATCH("/event-details", s.updateEventDetails)
	sess.POST("/event-details/validate", s.validateEventDetails)
	sess.POST("/categories", s.selectCategory)
	sess.DELETE("/categories/:categoryID", s.deselectCategory)
	sess.GET("/package", s.getPackage)
	sess.POST("/package/items", s.addPackageItem)
	sess.PATCH("/package/items/:itemID", s.updatePackageItem)
	sess.DELETE("/package/items/:itemID", s.removePackageItem)
	sess.GET("/recommendations", s.recommendations)
	sess.PUT("/filters", s.setFilters)
	sess.DELETE("/filters", s.resetFilters)
	sess.POST("/reset", s.resetSession)
	sess.POST("/clear", s.clearEventData)

	return r
}
