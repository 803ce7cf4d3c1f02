package logger

import (
	"mediboard-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewBootstrapLogger is the plain logger used during startup and shutdown,
// before and after the structured zap logger is in play.
func NewBootstrapLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	if internalConfig.App.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
