package utils

import (
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Level is the level used by the loggers created with NewLogger
var Level = logrus.InfoLevel

// NewLogger creates a new logger object
func NewLogger(prefix string) *logrus.Entry {
	log := logrus.New()
	log.Formatter = new(prefixed.TextFormatter)
	log.Level = Level
	logger := log.WithFields(logrus.Fields{
		"prefix": prefix,
	})

	return logger
}
