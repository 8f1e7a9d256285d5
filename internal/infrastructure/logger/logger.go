package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process-wide logger. Production config outside development
// so Cloud Run log parsing gets JSON; development keeps console encoding.
func New(environment string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if environment == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
