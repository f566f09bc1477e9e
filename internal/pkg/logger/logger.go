package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName - значение поля service во всех записях
const ServiceName = "cadastre-search-api"

// New - логгер уровня level: JSON в production, цветная консоль для debug.
// Поля service и env добавляются в каждую запись.
func New(level, env string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"service": ServiceName,
			"env":     env,
		},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if zapLevel == zapcore.DebugLevel {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}
