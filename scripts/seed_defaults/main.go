// Command seed_defaults gives one business the standard categories and payment modes.
// Running it again only adds what is missing.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/cashbook-server/internal/config"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/operator"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
)

func main() {
	businessFlag := flag.String("business", "", "UUID of the business to seed")
	verbose := flag.Bool("v", false, "dump the finished action")
	flag.Parse()

	logger := logging.SetupLogging()

	businessID, err := uuid.FromString(*businessFlag)
	if err != nil {
		logger.WithError(err).Fatal("a valid -business UUID is required")
		return
	}

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, 1, logger)
	delegator.Start()
	defer delegator.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	action := &actions.SeedDefaults{BusinessID: businessID}
	if err := delegator.Process(ctx, action); err != nil {
		logger.WithError(err).WithField("businessID", businessID.String()).Error("SeedDefaults failed")
		return
	}

	if *verbose {
		spew.Dump(action)
	}
	logger.WithFields(logrus.Fields{
		"businessID":        businessID.String(),
		"categoriesAdded":   action.CategoriesAdded,
		"paymentModesAdded": action.PaymentModesAdded,
	}).Info("Seed status")
}
