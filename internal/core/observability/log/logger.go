package log

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Log = (*Logger)(nil)

// Options configures New.
type Options struct {
	Level Level
	// Encoding is "json" or "console".
	Encoding string
	Output   []string
}

type Logger struct {
	zapLogger *zap.Logger
	level     Level
}

func New(opts Options) (*Logger, error) {
	encoding := opts.Encoding
	if encoding == "" {
		encoding = "json"
	}
	output := opts.Output
	if len(output) == 0 {
		output = []string{"stderr"}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(toZapLevel(opts.Level)),
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      output,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &Logger{zapLogger: zapLogger, level: opts.Level}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zapLogger: zap.NewNop(), level: LevelError}
}

// FromZap wraps an existing zap logger, e.g. zaptest or an observer core.
func FromZap(l *zap.Logger, level Level) *Logger {
	return &Logger{zapLogger: l, level: level}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.zapLogger.Debug(msg, toZapFields(fields)...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.zapLogger.Info(msg, toZapFields(fields)...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.zapLogger.Warn(msg, toZapFields(fields)...) }
func (l *Logger) Error(msg string, fields ...Field) { l.zapLogger.Error(msg, toZapFields(fields)...) }

func (l *Logger) With(fields ...Field) Log {
	return &Logger{zapLogger: l.zapLogger.With(toZapFields(fields)...), level: l.level}
}

func (l *Logger) Named(name string) Log {
	return &Logger{zapLogger: l.zapLogger.Named(name), level: l.level}
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Sync() error { return l.zapLogger.Sync() }

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func toZapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch f.Type {
		case BoolType:
			out[i] = zap.Bool(f.Key, f.Value.(bool))
		case DurationType:
			out[i] = zap.Duration(f.Key, f.Value.(time.Duration))
		case Float64Type:
			out[i] = zap.Float64(f.Key, f.Value.(float64))
		case IntType:
			out[i] = zap.Int(f.Key, f.Value.(int))
		case Uint64Type:
			out[i] = zap.Uint64(f.Key, f.Value.(uint64))
		case Uint32Type:
			out[i] = zap.Uint32(f.Key, f.Value.(uint32))
		case StringType:
			out[i] = zap.String(f.Key, f.Value.(string))
		case StringerType:
			out[i] = zap.Stringer(f.Key, f.Value.(fmt.Stringer))
		case ErrorType:
			out[i] = zap.NamedError(f.Key, f.Value.(error))
		default:
			out[i] = zap.Any(f.Key, f.Value)
		}
	}
	return out
}
