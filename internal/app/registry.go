package app

import (
	"github.com/niranjan-18-25/WorkOrbit/internal/attendance"
	"github.com/niranjan-18-25/WorkOrbit/internal/auth"
	"github.com/niranjan-18-25/WorkOrbit/internal/config"
	"github.com/niranjan-18-25/WorkOrbit/internal/dashboard"
	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	"github.com/niranjan-18-25/WorkOrbit/internal/message"
	"github.com/niranjan-18-25/WorkOrbit/internal/middleware"
	"github.com/niranjan-18-25/WorkOrbit/internal/review"
	"github.com/niranjan-18-25/WorkOrbit/internal/task"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	bus := events.NewBus()
	session := auth.NewSession()

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	reviewRepo := review.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	messageRepo := message.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(userRepo, session, cfg.JWTSecret)
	userService := user.NewService(userRepo, bus)
	taskService := task.NewService(taskRepo, bus)
	reviewService := review.NewService(reviewRepo, bus)
	attendanceService := attendance.NewService(gormDB, attendanceRepo, bus)
	messageService := message.NewService(messageRepo, bus, rdb)
	dashboardService := dashboard.NewService(userRepo, taskRepo, reviewRepo, attendanceRepo, taskService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	taskHandler := task.NewHandler(taskService)
	reviewHandler := review.NewHandler(reviewService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	messageHandler := message.NewHandler(messageService)
	messageStream := message.NewStreamHandler(rdb)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	dashboardStream := dashboard.NewStreamHandler(dashboardService, bus)

	// --- Middleware ---
	authn := middleware.AuthRequired(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(user.RoleAdmin)
	employeeOnly := middleware.RequireRole(user.RoleEmployee)
	loginLimiter := middleware.RateLimitByIP(rate.Limit(1), 5)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, loginLimiter, authn)
		user.RegisterRoutes(api, userHandler, authn, adminOnly)
		task.RegisterRoutes(api, taskHandler, authn, adminOnly, employeeOnly)
		review.RegisterRoutes(api, reviewHandler, authn, adminOnly, employeeOnly)
		attendance.RegisterRoutes(api, attendanceHandler, authn, adminOnly, employeeOnly)
		message.RegisterRoutes(api, messageHandler, messageStream, authn)
		dashboard.RegisterRoutes(api, dashboardHandler, dashboardStream, authn, adminOnly, employeeOnly)
	}

	return nil
}
