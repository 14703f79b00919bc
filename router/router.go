package router

import (
	"yirestaurant/config"
	"yirestaurant/controllers"
	"yirestaurant/metrics"
	"yirestaurant/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Initialize wires all routes and middlewares: the public pages, the two
// form endpoints (rate limited), and the Basic-auth admin console.
func Initialize(r *gin.Engine, ct *controllers.Controller, cfg config.Configuration, log *zerolog.Logger) {
	r.Use(gin.Recovery())
	r.Use(Logger(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	// Public pages
	r.GET("/", ct.Home)
	r.GET("/menu", ct.Menu)
	r.GET("/about", ct.About)
	r.GET("/contact", ct.Contact)
	r.GET("/gallery", ct.Gallery)

	// Form submissions
	forms := r.Group("")
	forms.Use(RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	forms.POST("/reservation", ct.SubmitReservation)
	forms.POST("/contact-form", ct.SubmitContactForm)

	// Admin console. /admin itself just redirects; auth is enforced on
	// the downstream endpoints.
	r.GET("/admin", ct.AdminIndex)

	admin := r.Group("/admin")
	admin.Use(BasicAuth(cfg))
	admin.GET("/reservations", ct.AdminReservations)
	admin.GET("/reservation/:id/edit", ct.AdminEditReservation)
	admin.POST("/reservation/:id/edit", ct.AdminUpdateReservation)
	admin.POST("/reservation/:id/delete", ct.AdminDeleteReservation)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
