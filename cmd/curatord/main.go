package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/radiopassport/radio-passport/internal/app"
	"github.com/radiopassport/radio-passport/internal/config"
	"github.com/radiopassport/radio-passport/internal/httpserver"
)

func main() {
	configFile := flag.String("config", "", "path to a curator config file")
	envFile := flag.String("env", "", "path to a dotenv file loaded before config")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.Options{ConfigFile: *configFile, EnvFile: *envFile})
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	container, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("build container: %v", err)
	}
	defer container.Close(context.Background())

	server, err := httpserver.New(container)
	if err != nil {
		log.Fatalf("construct server: %v", err)
	}

	if err := server.Listen(ctx); err != nil && err != context.Canceled {
		log.Fatalf("server stopped: %v", err)
	}
}
