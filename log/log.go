// Package log, global zap logger'ı uygulama açılışında hazırlar.
// cmd/main.go tarafından yan etkisi için import edilir.
package log

import (
	"os"

	"go.uber.org/zap"
)

func init() {
	var logger *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(logger)
}
