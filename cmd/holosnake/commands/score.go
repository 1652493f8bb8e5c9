package commands

import (
	"context"
	"time"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	scoreCmd.PersistentFlags().AddFlagSet(backendFlags())
	scoreCmd.AddCommand(scoreResetCmd)
}

type scoreStatus struct {
	Backend   string
	HighScore int
	Saved     bool
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "shows the saved high score",
	RunE: func(*cobra.Command, []string) error {
		status, err := getScore()
		if err != nil {
			return err
		}
		spew.Dump(status)
		return nil
	},
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "resets the saved high score to 0",
	RunE: func(*cobra.Command, []string) error {
		store, release, err := openStore()
		if err != nil {
			return err
		}
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Wrap(store.PutHighScore(ctx, 0), "unable to reset high score")
	},
}

func getScore() (*scoreStatus, error) {
	store, release, err := openStore()
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := &scoreStatus{Backend: backend}
	score, err := store.GetHighScore(ctx)
	switch {
	case errors.Cause(err) == controller.ErrNotFound:
	case err != nil:
		return nil, err
	default:
		status.HighScore = score
		status.Saved = true
	}
	return status, nil
}
