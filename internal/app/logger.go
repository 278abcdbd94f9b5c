package app

import (
	"log"
	"os"
	"strings"
)

func newLogger(appName string) *log.Logger {
	prefix := strings.TrimSpace(appName)
	if prefix == "" {
		prefix = "jobtalk"
	}
	return log.New(os.Stdout, "["+prefix+"] ", log.LstdFlags|log.Lmsgprefix)
}
