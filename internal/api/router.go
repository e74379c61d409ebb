package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/qsafe/devicehub/docs"
	"github.com/qsafe/devicehub/internal/api/handler"
	"github.com/qsafe/devicehub/internal/api/middleware"
	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/pkg/token"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Auth        ports.AuthService
	Users       ports.UserService
	Devices     ports.DeviceService
	Access      ports.AccessService
	Billing     ports.BillingService
	Maintenance ports.MaintenanceService
	Audit       ports.AuditLog

	Issuer   *token.Issuer
	Denylist ports.TokenDenylist
	Pingers  []handler.Pinger
	Logger   zerolog.Logger

	// Registerer receives the per-route request metrics; nil means the
	// default registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "devicehub",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	deviceHandler := handler.NewDeviceHandler(d.Devices)
	accessHandler := handler.NewAccessHandler(d.Access)
	billingHandler := handler.NewBillingHandler(d.Billing)
	maintenanceHandler := handler.NewMaintenanceHandler(d.Maintenance)
	auditHandler := handler.NewAuditHandler(d.Audit)
	healthHandler := handler.NewHealthHandler(d.Pingers...)

	authMiddleware := middleware.Auth(d.Issuer, d.Denylist, d.Auth, d.Logger)
	superAdmin := middleware.RBAC(domain.RoleSuperAdmin)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	v1 := e.Group("/v1", authMiddleware)

	users := v1.Group("/users", middleware.RequirePermission(domain.FeatureUsers))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.PUT("/:id/role", userHandler.SetRole, superAdmin)

	devices := v1.Group("/devices", middleware.RequirePermission(domain.FeatureDevices))
	devices.GET("", deviceHandler.List)
	devices.POST("", deviceHandler.Create)
	devices.POST("/import", deviceHandler.Import)
	devices.GET("/:id", deviceHandler.Get)
	devices.PATCH("/:id/config", deviceHandler.UpdateConfig)

	access := v1.Group("/access", middleware.RequirePermission(domain.FeatureAccess))
	access.POST("/toggle", accessHandler.Toggle)
	access.GET("/check", accessHandler.Check)
	access.GET("/rights", accessHandler.Rights)
	access.GET("/unassigned", accessHandler.Unassigned)
	access.GET("/users/:id", accessHandler.Matrix)
	access.GET("/users/:id/devices", accessHandler.UserDevices)

	billing := v1.Group("/billing", middleware.RequirePermission(domain.FeatureBilling))
	billing.GET("", billingHandler.Overview)
	billing.GET("/payments", billingHandler.Payments)
	billing.GET("/users/:id/devices", billingHandler.UserDevices)
	billing.POST("/devices/:id/block", billingHandler.ToggleBlock)
	billing.POST("/devices/:id/payments", billingHandler.RecordPayment)
	billing.PUT("/devices/:id/payment-status", billingHandler.SetPaymentStatus)

	calibration := v1.Group("/calibration", middleware.RequirePermission(domain.FeatureCalibration))
	calibration.GET("", maintenanceHandler.Calibration)
	calibration.POST("/devices/:id", maintenanceHandler.RecordCalibration)

	reminders := v1.Group("/reminders", middleware.RequirePermission(domain.FeatureService))
	reminders.GET("", maintenanceHandler.Reminders)
	reminders.POST("", maintenanceHandler.AddReminder)
	reminders.GET("/:id", maintenanceHandler.GetReminder)
	reminders.PATCH("/:id", maintenanceHandler.UpdateReminder)

	v1.GET("/me/devices", accessHandler.MyDevices, middleware.RegularUser())
	v1.GET("/audit", auditHandler.List, superAdmin)

	return e
}
