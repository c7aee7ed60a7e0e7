package app

import (
	"context"

	"github.com/niranjan-18-25/WorkOrbit/internal/attendance"
	"github.com/niranjan-18-25/WorkOrbit/internal/config"
	"github.com/niranjan-18-25/WorkOrbit/internal/message"
	"github.com/niranjan-18-25/WorkOrbit/internal/review"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/connection"
	"github.com/niranjan-18-25/WorkOrbit/internal/task"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates and seeds the store,
// and wires every module onto the router. All dependencies are
// constructed here and passed down explicitly.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&user.User{},
		&task.Task{},
		&review.Review{},
		&attendance.Attendance{},
		&message.Message{},
	); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		// Live chat and the unread cache degrade gracefully without
		// redis; the REST surface keeps working.
		zap.L().Warn("redis unavailable, live messaging disabled", zap.Error(err))
		redisClient = nil
	}

	userRepo := user.NewRepository(gormDB)
	user.EnsureAdminSeed(context.Background(), userRepo)

	return registerModules(router, cfg, gormDB, redisClient)
}
