package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paygate/config"
	"paygate/internal"
	"paygate/services"
)

func main() {

	logger := internal.NewLogger("internal", false, nil)

	configPath := flag.String("conf", ".env", "path to config file (yaml or .env); environment only when missing")
	flag.Parse()

	err := run(*configPath, logger)
	if err != nil {
		logger.Error("boot", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("server stopped")
	logger.Sync()
}

func run(configPath string, logger *internal.Logger) error {
	logger.Info("using config file: " + configPath)
	conf, err := config.GetConfig(configPath)
	if err != nil {
		return err
	}

	var mongo services.Database
	if conf.Mongo.Enabled {
		mongo, err = internal.NewMongoClient(conf)
		if err != nil {
			return err
		}
		logger.Info("mongo client initialized")
	}

	payments, err := internal.NewPayments(conf)
	if err != nil {
		return err
	}
	paymentsLogger := internal.NewLogger("payments", conf.IsDebug, mongo)
	defer paymentsLogger.Sync()
	payments.SetLogger(paymentsLogger)

	serverLogger := internal.NewLogger("server", conf.IsDebug, mongo)
	defer serverLogger.Sync()
	server := internal.NewServer(conf)
	server.SetLogger(serverLogger)
	server.SetPaymentsService(payments)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown", err)
		}
	}()

	return server.Start()
}
