//go:build lambda

package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	level := os.Getenv("TEAM_OPTIMIZER_LOG_LEVEL")
	if err := initLogging(level, "json", nil); err != nil {
		slog.Error("logging setup", slog.Any("err", err))
	}
	lambda.Start(handler)
}
