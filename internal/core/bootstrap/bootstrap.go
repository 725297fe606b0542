// Package bootstrap 三个入口（api / admin / usersctl）共用的装配代码
package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"paranoid-users/internal/core/auth"
	"paranoid-users/internal/core/config"
	"paranoid-users/internal/core/database"
	"paranoid-users/internal/core/logger"
	"paranoid-users/internal/feature/user"
	"paranoid-users/internal/repo"
	"paranoid-users/internal/service"
	"paranoid-users/internal/transport/http/router"
)

func Logger(c config.Log) (*zap.Logger, func()) {
	if c.File.Enable {
		return logger.NewWithRotate(c.Level, c.JSON, logger.FileRotate{
			Enable:     true,
			Filename:   c.File.Filename,
			MaxSizeMB:  c.File.MaxSizeMB,
			MaxBackups: c.File.MaxBackups,
			MaxAgeDays: c.File.MaxAgeDays,
			Compress:   c.File.Compress,
		})
	}
	return logger.New(c.Level, c.JSON)
}

// OpenDB 打开连接，按配置自动迁移并校验 Users 表
func OpenDB(c config.DB, l *zap.Logger) (*gorm.DB, error) {
	undo := logger.RedirectStdLog(l.Named("db"), zapcore.InfoLevel)
	defer undo()

	db, err := database.NewGorm(database.Opts{
		Driver:             c.Driver,
		DSN:                c.DSN,
		Username:           c.Username,
		Password:           c.Password,
		MaxOpenConns:       c.MaxOpenConns,
		MaxIdleConns:       c.MaxIdleConns,
		ConnMaxLifetimeMin: c.ConnMaxLifetimeMin,
		LogLevel:           c.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	l.Info("database connected", zap.String("driver", c.Driver))

	if c.AutoMigrate {
		if err := user.Migrate(db); err != nil {
			return nil, err
		}
		l.Info("automigrate done", zap.String("table", user.TableName))
	}
	return db, nil
}

func UserService(db *gorm.DB, l *zap.Logger) *service.UserService {
	return service.NewUserService(repo.NewUserRepo(db), l)
}

func JWTer(c config.JWT) *auth.JWTer {
	return auth.NewJWTer(c.Secret, c.Issuer, c.TTL())
}

func RouterOptions(c config.Limits) router.Options {
	return router.Options{
		RateRPS:      c.RateRPS,
		RateBurst:    c.RateBurst,
		MaxInFlight:  c.MaxInFlight,
		MaxBodyBytes: c.MaxBodyBytes,
		Timeout:      c.RequestTimeout,
		CORSOrigins:  c.CORSOrigins,
	}
}
