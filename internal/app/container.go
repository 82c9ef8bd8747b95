package app

import (
	"github.com/casbin/casbin/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/config"
	"github.com/tharanikumar/medvault/internal/infrastructure/auth"
	"github.com/tharanikumar/medvault/internal/infrastructure/database"
	"github.com/tharanikumar/medvault/internal/infrastructure/notifications"
	"github.com/tharanikumar/medvault/internal/infrastructure/repositories"
	"github.com/tharanikumar/medvault/internal/logger"
	"github.com/tharanikumar/medvault/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Log    *logger.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Enforcer    *casbin.Enforcer
	Registry    *prometheus.Registry

	// Repositories
	AccountRepo      domain.AccountRepository
	CodeRepo         domain.CodeRepository
	SessionRepo      domain.SessionRepository
	AppointmentRepo  domain.AppointmentRepository
	DoctorRepo       domain.DoctorRepository
	NotificationRepo domain.NotificationRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	Mailer          domain.Mailer
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	AppointmentSvc  domain.AppointmentService
	NotificationSvc domain.NotificationService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config:   cfg,
		Log:      logger.New(cfg.LogLevel),
		Registry: prometheus.NewRegistry(),
	}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initRedis()
	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Enforcer = cas.E
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.CodeRepo = repositories.NewCodeRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
	c.AppointmentRepo = repositories.NewAppointmentRepository(c.DB)
	c.DoctorRepo = repositories.NewDoctorRepository(c.DB)
	c.NotificationRepo = repositories.NewNotificationRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.Mailer = notifications.NewSMTPMailer(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
		c.Log,
	)

	c.OTPSvc = services.NewOTPService(
		c.CodeRepo,
		c.AccountRepo,
		auth.NewCodeGenerator(),
		c.Mailer,
		c.RedisClient,
		c.Log,
		services.OTPConfig{
			Length:       c.Config.OTP_Length,
			TTL:          c.Config.OTP_TTL,
			ResendWindow: c.Config.OTP_ResendWindow,
		},
	)

	c.AuthSvc = services.NewAuthService(
		c.AccountRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		services.AuthConfig{
			SessionTTL:         c.Config.SessionTTL,
			AccessTTL:          c.Config.AccessTTL,
			PasswordGatedLogin: c.Config.PasswordGatedLogin,
			DevMode:            c.Config.DevMode,
		},
	)

	c.NotificationSvc = services.NewNotificationService(c.NotificationRepo, c.Log)
	c.AppointmentSvc = services.NewAppointmentService(
		c.AppointmentRepo,
		c.DoctorRepo,
		c.NotificationSvc,
		c.Log,
	)
}
