package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/profiledash/internal/buildinfo"
	"github.com/dmitrijs2005/profiledash/internal/devserver"
	"github.com/dmitrijs2005/profiledash/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := devserver.LoadConfig(os.Args[1:])

	logger, err := logging.NewLogger(os.Stdout, cfg.LogLevel, "json")
	if err != nil {
		log.Fatalf("%v", err)
	}

	srv := devserver.New([]byte(cfg.SecretKey),
		devserver.WithTokenTTL(cfg.TokenTTL),
		devserver.WithLogger(logger.With("module", "devserver")),
	)
	srv.AddAccount(devserver.DemoAccount())

	if err := srv.Run(ctx, cfg.Address); err != nil {
		log.Fatalf("%v", err)
	}
}
