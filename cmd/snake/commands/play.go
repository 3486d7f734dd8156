package commands

import (
	"context"
	"io/ioutil"
	"math/rand"
	"time"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/controller/filestore"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	canvasWidth  = 400
	canvasHeight = 400
	cellSize     = 20
	seed         int64
	recordPath   = ""
)

func init() {
	playCmd.Flags().IntVar(&canvasWidth, "width", canvasWidth, "canvas width in pixels")
	playCmd.Flags().IntVar(&canvasHeight, "height", canvasHeight, "canvas height in pixels")
	playCmd.Flags().IntVar(&cellSize, "cell-size", cellSize, "size of a board cell in pixels")
	playCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, the current time is used when zero")
	playCmd.Flags().StringVar(&recordPath, "record", recordPath, "append every frame to this file as JSON lines")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a game of snake in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		startPrometheus()
		return play(context.Background())
	},
}

func gameConfig() rules.Config {
	cfg := rules.ConfigFromCanvas(canvasWidth, canvasHeight, cellSize)
	cfg.StartSpeed = config.StartSpeed
	cfg.MinSpeed = config.MinSpeed
	cfg.SpeedStep = config.SpeedStep
	cfg.FoodAttempts = config.FoodAttempts
	return cfg
}

func newGame() (*rules.Game, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("seeding game")

	game, err := rules.NewGame(gameConfig(), rand.New(rand.NewSource(seed)))
	if err == rules.ErrBoardFull {
		// the controller reports the win on start
		return game, nil
	}
	return game, err
}

func play(ctx context.Context) error {
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
	}

	game, err := newGame()
	if err != nil {
		return errors.Wrap(err, "unable to create game")
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := controller.New(game, store, worker.NewClock())
	ctrl.HighScoreKey = highScoreKey
	ctrl.Renderer = termRenderer{}
	ctrl.Notifier = termNotifier{hold: config.NotifyHold}
	if recordPath != "" {
		fw, err := filestore.NewFrameWriter(recordPath)
		if err != nil {
			return err
		}
		defer fw.Close()
		ctrl.Recorder = fw
	}

	intents := readIntents(ctx, cancel, setupEventQueue())
	err = ctrl.Run(ctx, intents)
	if errors.Cause(err) == context.Canceled {
		return nil
	}
	if err != nil {
		return err
	}

	if ctrl.Halted() {
		go func() {
			for range intents {
			}
		}()
		tbprint(left, top+game.Config.Height+3, defaultColor, defaultColor, "Press Esc to exit...")
		if err := termbox.Flush(); err != nil {
			return err
		}
		<-ctx.Done()
	}
	return nil
}
