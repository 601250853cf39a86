package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashbook-server/api"
	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/config"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/operator"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("cashbook-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logging.SetLevel(logger, envConfig.LogLevel)
	if envConfig.UsesDevelopmentSecret() {
		logger.WithField("environment", envConfig.Environment).
			Warn("JWT_SECRET is unset; bearer tokens are verified with the development secret")
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage.Read(), delegator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		httpRest := api.Rest{
			Logger:         logger,
			Port:           envConfig.HTTPPort,
			Storage:        dbStorage,
			Service:        svc,
			Verifier:       auth.NewVerifier(envConfig.JWTSecret),
			AllowedOrigins: envConfig.CORSAllowedOrigins,
		}
		httpRest.Serve(ctx)
	}()

	wg.Wait()
}
