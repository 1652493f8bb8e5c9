package commands

import (
	"context"
	"os"
	"time"

	"github.com/battlesnakeio/holosnake/api"
	"github.com/battlesnakeio/holosnake/audio"
	"github.com/battlesnakeio/holosnake/config"
	"github.com/battlesnakeio/holosnake/controller"
	"github.com/battlesnakeio/holosnake/input"
	"github.com/battlesnakeio/holosnake/layout"
	"github.com/battlesnakeio/holosnake/rules"
	"github.com/battlesnakeio/holosnake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	spectateListen = ""
	musicFile      = ""
	mute           = false
)

func init() {
	playCmd.Flags().AddFlagSet(backendFlags())
	playCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	playCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	playCmd.Flags().StringVar(&spectateListen, "spectate-listen", spectateListen, "address to serve spectators on, empty to disable")
	playCmd.Flags().StringVar(&musicFile, "music", musicFile, "WAV file to loop as background music")
	playCmd.Flags().BoolVar(&mute, "mute", mute, "do not open the audio device")
}

var playCmd = &cobra.Command{
	Use:    "play",
	Short:  "plays holosnake in the terminal",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		if err := play(); err != nil {
			log.WithError(err).Error("game stopped")
			os.Exit(1)
		}
	},
}

func play() error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to open log file %s", logFile)
	}
	defer f.Close()
	log.SetOutput(f)
	defer log.SetOutput(os.Stderr)

	store, release, err := openStore()
	if err != nil {
		return err
	}
	defer release()

	sounds := audio.NewSoundManager()
	if !mute {
		if err := sounds.Initialize(); err != nil {
			log.WithError(err).Warn("audio disabled")
		}
		defer sounds.Cleanup()
	}
	if musicFile != "" {
		if err := sounds.LoadMusic(musicFile); err != nil {
			log.WithError(err).Warn("using built in music")
		}
	}

	machine := controller.NewMachine(controller.Config{
		FoodSize: layout.Size{W: config.FoodWidth, H: config.FoodHeight},
		WallSize: layout.Size{W: config.WallWidth, H: config.WallHeight},
		Scores:   controller.NewScoreKeeper(store),
		Notifier: rules.Notifiers{sounds, worker.EventCounter},
	})
	sounds.SetPolicy(machine.Menu())

	sinks := []worker.Sink{termboxRenderer{}}
	if spectateListen != "" {
		srv := api.New(spectateListen)
		go srv.WaitForExit()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("spectator server did not shut down cleanly")
			}
		}()
		sinks = append(sinks, srv)
	}

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to open terminal")
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	w := &worker.Worker{
		Machine:       machine,
		Source:        newTermboxSource(),
		Sinks:         sinks,
		Gestures:      input.NewGestures(config.PinchRate, config.FistRate),
		FrameInterval: config.FrameInterval(),
	}
	return w.Run(context.Background())
}
