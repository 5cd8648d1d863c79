package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New собирает преднастроенный logrus: JSON и info-уровень для продакшна,
// текстовый вывод с полными метками времени и debug для всего остального.
// Режим определяется по GIN_MODE, отдельной переменной не заводим.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(new(logrus.JSONFormatter))
		l.SetLevel(logrus.InfoLevel)
		return l
	}

	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}
