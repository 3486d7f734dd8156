package commands

import (
	"io"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/controller/filestore"
	"github.com/battlesnakeio/snake/controller/redisstore"
	"github.com/battlesnakeio/snake/controller/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	storeBackend     = "file"
	storeBackendArgs = ""
	highScoreKey     = controller.DefaultHighScoreKey
)

func storeFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("store", pflag.ExitOnError)
	fs.StringVarP(&storeBackend, "backend", "b", storeBackend, "high score backend, as one of: [inmem, file, redis, sql]")
	fs.StringVarP(&storeBackendArgs, "backend-args", "a", storeBackendArgs, "options to pass to the backend being used (directory, redis URL or postgres URL)")
	fs.StringVar(&highScoreKey, "high-score-key", highScoreKey, "key the high score is stored under")
	return fs
}

// openStore returns the configured store, instrumented, and a func that
// releases it.
func openStore() (controller.Store, func(), error) {
	var store controller.Store
	var err error
	switch storeBackend {
	case "inmem":
		store = controller.InMemStore()
	case "file":
		store = filestore.NewFileStore(storeBackendArgs)
	case "redis":
		store, err = redisstore.NewRedisStore(storeBackendArgs)
	case "sql":
		store, err = sqlstore.NewSQLStore(storeBackendArgs)
	default:
		return nil, nil, errors.Errorf("invalid backend %q", storeBackend)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to start up %s backend store", storeBackend)
	}

	closer := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}
	}
	return controller.InstrumentStore(store), closer, nil
}
