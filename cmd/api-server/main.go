package main

import (
	"fmt"
	"os"

	"zhihuer/config"
	"zhihuer/pkg/async"
	"zhihuer/pkg/log"
	"zhihuer/pkg/server"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	if err := async.Init(cfg.Async); err != nil {
		log.L.Fatal("failed to init async pool", zap.Error(err))
	}
	defer func() {
		if err := async.Release(); err != nil {
			log.L.Warn("release async pool", zap.Error(err))
		}
	}()

	appProvider, err := InitServer(cfg)
	if err != nil {
		log.L.Fatal("failed to init server", zap.Error(err))
	}

	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, appProvider)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
