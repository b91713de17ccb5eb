package canopy

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvVar controls logging verbosity when InitLogging is called with
// an empty level. When unset, canopy logs nothing.
const LogLevelEnvVar = "CANOPY_LOG_LEVEL"

var pkgLogger atomic.Pointer[zap.Logger]

// SetLogger replaces the logger used for protocol warnings, paint failures
// and debug timings. A nil logger silences canopy.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger.Store(l)
}

// Logger returns the current logger. It is never nil.
func Logger() *zap.Logger {
	return logger()
}

func logger() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// InitLogging builds a console logger at the given level ("debug", "info",
// "warn", "error"). An empty level falls back to $CANOPY_LOG_LEVEL, and if
// that is empty too logging stays silent.
func InitLogging(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		SetLogger(zap.NewNop())
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("canopy: failed to initialize logger: %w", err)
	}
	SetLogger(l.Named("canopy"))
	return nil
}

func widgetField(id WidgetID) zap.Field {
	return zap.Uint64("widget_id", uint64(id))
}
