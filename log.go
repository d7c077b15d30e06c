package triangle

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the logger diagnostics are written to by default.
// Compile logs and the driver version go to standard output.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
