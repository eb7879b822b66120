package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "bangazon-api"

var log *zap.Logger

// Options selects the encoder and minimum level of the global logger.
// An empty Level means info in production and debug otherwise.
type Options struct {
	Production bool
	Level      string
}

func newConfig(opts Options) (zap.Config, error) {
	var cfg zap.Config

	if opts.Production {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		cfg.InitialFields = map[string]interface{}{"service": serviceName}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if opts.Level != "" {
		lvl, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return cfg, fmt.Errorf("log level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg, nil
}

// Init replaces the global logger. On error the previous logger is kept.
func Init(opts Options) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	l, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	log = l
	return nil
}

// L returns the global logger. Before Init it is built from APP_ENV and
// LOG_LEVEL, falling back to a no-op logger if those are unusable.
func L() *zap.Logger {
	if log == nil {
		err := Init(Options{
			Production: os.Getenv("APP_ENV") == "production",
			Level:      os.Getenv("LOG_LEVEL"),
		})
		if err != nil {
			log = zap.NewNop()
		}
	}
	return log
}

// Sync flushes buffered entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
