package main

import (
	"go-paygrade/internal/app"
	"go-paygrade/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunScanner(); err != nil {
		logger.Fatal("run scanner failed", zap.Error(err))
	}
}
