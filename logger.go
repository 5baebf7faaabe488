package linebits

import (
	"github.com/redBorder/linebits/utils"
	"github.com/sirupsen/logrus"
)

// Logger for the package
var Logger = utils.NewLogger("linebits")

// LogLevel sets logging level
func LogLevel(newLevel logrus.Level) {
	utils.Level = newLevel
	Logger = utils.NewLogger("linebits")
}
