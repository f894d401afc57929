package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field keys shared by every sorter log line.
const (
	WorldKey     = "world"
	BackendKey   = "backend"
	ContainerKey = "container"
	RayIDKey     = "ray_id"
)

// New creates a new zap logger based on the configuration. The given fields
// are attached to every entry, typically World and Backend.
func New(cfg *Config, fields ...zap.Field) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	return logger, nil
}

// World names the world a process serves. Empty names are skipped.
func World(name string) zap.Field {
	if name == "" {
		return zap.Skip()
	}
	return zap.String(WorldKey, name)
}

// Backend names the container backend in use.
func Backend(name string) zap.Field {
	return zap.String(BackendKey, name)
}

// Container names the container an entry is about.
func Container(id string) zap.Field {
	return zap.String(ContainerKey, id)
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals(RayIDKey)
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String(RayIDKey, str))
	}
	return l
}
