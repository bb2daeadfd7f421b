package logger

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/askiada/go-rat/internal/config"
)

// Provide builds the logger described by cfg, writing to output. Without a log level
// the logger discards everything so that only the displayed text reaches the terminal.
func Provide(cfg *config.Config, output io.Writer) (*zap.Logger, error) {
	if cfg.LogLevel == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	writer := zapcore.AddSync(output)

	switch cfg.Env {
	case "prod":
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, level)

		return zap.New(core), nil
	default:
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), writer, level)

		return zap.New(core, zap.Development()), nil
	}
}
