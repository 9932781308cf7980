package negotiate

import (
	"io"

	"github.com/sirupsen/logrus"
)

func loggerOrDiscard(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger != nil {
		return logger
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}
