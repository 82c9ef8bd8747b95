package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tharanikumar/medvault/internal/http/handlers"
	"github.com/tharanikumar/medvault/internal/http/middleware"
)

// RouterDeps bundles everything BuildRouter needs to assemble the engine.
type RouterDeps struct {
	Auth          *handlers.AuthHandlers
	Appointments  *handlers.AppointmentHandlers
	Doctors       *handlers.DoctorHandlers
	Notifications *handlers.NotificationHandlers
	JWT           *middleware.AuthMW
	Casbin        *middleware.CasbinMW
	Metrics       *middleware.Metrics
	Registry      *prometheus.Registry
}

func BuildRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), d.Metrics.Handler())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	auth := r.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/verify", d.Auth.Verify)
	auth.POST("/refresh", d.Auth.Refresh)

	// Doctor search is public so patients can browse before signing in.
	r.GET("/doctors", d.Doctors.Search)

	v := r.Group("/").Use(d.JWT.WithJWT(), d.Casbin.Enforce())
	v.GET("/auth/me", d.Auth.Me)
	v.POST("/auth/logout", d.Auth.Logout)

	v.POST("/appointments", d.Appointments.Book)
	v.GET("/appointments", d.Appointments.List)
	v.POST("/appointments/:id/:action", d.Appointments.Transition)

	v.PUT("/doctor/profile", d.Doctors.UpdateProfile)

	v.GET("/notifications", d.Notifications.List)
	v.POST("/notifications/:id/read", d.Notifications.MarkRead)

	return r
}
