package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharanikumar/medvault/internal/config"
	httpx "github.com/tharanikumar/medvault/internal/http"
	"github.com/tharanikumar/medvault/internal/http/handlers"
	"github.com/tharanikumar/medvault/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	deps := httpx.RouterDeps{
		Auth:          handlers.NewAuthHandlers(c.AuthSvc),
		Appointments:  handlers.NewAppointmentHandlers(c.AppointmentSvc),
		Doctors:       handlers.NewDoctorHandlers(c.DoctorRepo, c.AccountRepo),
		Notifications: handlers.NewNotificationHandlers(c.NotificationSvc),
		JWT:           middleware.NewAuthMW(c.TokenSvc, c.SessionRepo, c.AccountRepo),
		Casbin:        middleware.NewCasbinMW(c.Enforcer),
		Metrics:       middleware.NewMetrics(c.Registry),
		Registry:      c.Registry,
	}
	r := httpx.BuildRouter(deps)

	seedPolicies(c)

	addr := ":" + cfg.Port
	c.Log.WithField("addr", addr).Info("listening")
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role grants on first boot
func seedPolicies(c *Container) {
	policies, _ := c.Enforcer.GetPolicy()
	if len(policies) > 0 {
		return
	}

	shared := [][3]string{
		{"/auth/me", "GET", ""},
		{"/auth/logout", "POST", ""},
		{"/appointments", "GET", ""},
		{"/notifications", "GET", ""},
		{"/notifications/*", "POST", ""},
	}
	for _, role := range []string{"role_patient", "role_doctor", "role_hospital"} {
		for _, p := range shared {
			c.Enforcer.AddPolicy(role, p[0], p[1])
		}
	}

	c.Enforcer.AddPolicy("role_patient", "/appointments", "POST")
	c.Enforcer.AddPolicy("role_doctor", "/appointments/*", "POST")
	c.Enforcer.AddPolicy("role_doctor", "/doctor/profile", "PUT")

	if err := c.Enforcer.SavePolicy(); err != nil {
		c.Log.WithError(err).Warn("casbin: failed to persist seeded policies")
		return
	}
	c.Log.Info("casbin: seeded default policies")
}
