package commands

import (
	"io"

	"github.com/battlesnakeio/holosnake/config"
	"github.com/battlesnakeio/holosnake/controller"
	"github.com/battlesnakeio/holosnake/controller/filestore"
	"github.com/battlesnakeio/holosnake/controller/redis"
	"github.com/battlesnakeio/holosnake/controller/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	backend     = config.HighScoreBackend
	backendArgs = config.HighScoreArgs
)

func backendFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("backend", pflag.ContinueOnError)
	fs.StringVarP(&backend, "backend", "b", backend, "high score backend, as one of: [inmem, file, redis, sql]")
	fs.StringVarP(&backendArgs, "backend-args", "a", backendArgs, "options to pass to the backend being used")
	return fs
}

// openStore returns the configured store and a func releasing it.
func openStore() (controller.Store, func(), error) {
	var store controller.Store
	var err error
	switch backend {
	case "inmem":
		store = controller.InMemStore()
	case "file":
		store = filestore.NewFileStore(backendArgs)
	case "redis":
		store, err = redis.NewStore(backendArgs)
	case "sql":
		store, err = sqlstore.NewSQLStore(backendArgs)
	default:
		return nil, nil, errors.Errorf("invalid backend %q", backend)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to start up %s backend", backend)
	}

	release := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}
	}
	return controller.InstrumentStore(store), release, nil
}
