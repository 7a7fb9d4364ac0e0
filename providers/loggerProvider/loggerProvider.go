package loggerProvider

import (
	"ecotrack/providers"
	"log"

	"go.uber.org/zap"
)

type LogProvider struct {
	production bool
	logger     *zap.Logger
}

func NewLogProvider(production bool) providers.ZapLoggerProvider {
	return &LogProvider{production: production}
}

func (l *LogProvider) InitLogger() {
	var err error
	if l.production {
		l.logger, err = zap.NewProduction()
	} else {
		l.logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	zap.ReplaceGlobals(l.logger)
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

// GetLogger falls back to a no-op logger before InitLogger has run.
func (l *LogProvider) GetLogger() *zap.Logger {
	if l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}
