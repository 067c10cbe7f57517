package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/admin/tg-bots/jyotish-engine/internal/app"
)

const appName = "jyotish_engine"

func main() {
	cfg, err := app.NewEnvConfig(appName)
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(appName, cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(ctx); err != nil {
		panic(err)
	}
}
