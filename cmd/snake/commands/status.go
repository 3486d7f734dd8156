package commands

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/version"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

type status struct {
	Version   string
	Backend   string
	Key       string
	HighScore int
	Found     bool
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "prints the stored high score",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s := status{
			Version: version.Version,
			Backend: storeBackend,
			Key:     highScoreKey,
			Found:   true,
		}
		s.HighScore, err = store.GetHighScore(ctx, highScoreKey)
		if err == controller.ErrNotFound {
			s.Found = false
		} else if err != nil {
			return err
		}

		spew.Dump(s)
		return nil
	},
}
