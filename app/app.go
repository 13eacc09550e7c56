package app

import (
	// Internal
	"github.com/tnozicka/doozer/app/appflags"
	"github.com/tnozicka/doozer/config"
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/log"
)

func Init() error {
	// Set up logging.
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))

	// Load the project configuration to fail fast
	// in case the configuration file is broken.
	if _, err := config.Load(); err != nil {
		return err
	}

	return nil
}

func InitOrDie() {
	if err := Init(); err != nil {
		errs.Fatal(err)
	}
}
