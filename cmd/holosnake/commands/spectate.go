package commands

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/gorilla/websocket"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var spectateAddr = "localhost:3006"

func init() {
	spectateCmd.Flags().StringVar(&spectateAddr, "addr", spectateAddr, "address of a game started with --spectate-listen")
}

var spectateCmd = &cobra.Command{
	Use:   "spectate",
	Short: "watches a game being played elsewhere",
	RunE: func(*cobra.Command, []string) error {
		return spectate()
	},
}

func dialSpectate() (*websocket.Conn, error) {
	u := url.URL{Scheme: "ws", Host: strings.Replace(spectateAddr, "http://", "", 1), Path: "/socket"}
	log.Printf("connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to dial %s", u.String())
	}
	return c, nil
}

// readViews decodes views until the connection closes.
func readViews(c *websocket.Conn, views chan<- controller.View) {
	defer close(views)
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.WithError(err).Info("spectate stream ended")
			}
			return
		}
		if mt != websocket.TextMessage {
			log.Println("unhandled message type:", mt)
			continue
		}
		var v controller.View
		if err := json.Unmarshal(message, &v); err != nil {
			log.WithError(err).Warn("unable to decode view")
			return
		}
		views <- v
	}
}

func spectate() error {
	c, err := dialSpectate()
	if err != nil {
		return err
	}
	defer c.Close()

	views := make(chan controller.View, 1)
	go readViews(c, views)

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to open terminal")
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	for {
		select {
		case ev := <-eventQueue:
			if ev.Type == termbox.EventKey && (ev.Key == termbox.KeyEsc || ev.Ch == 'q') {
				return nil
			}
		case v, ok := <-views:
			if !ok {
				tbprint(0, 0, defaultColor, defaultColor, "Game ended. Press any key to exit...")
				if err := termbox.Flush(); err != nil {
					return err
				}
				<-eventQueue
				return nil
			}
			if err := render(v); err != nil {
				return errors.Wrapf(err, "unable to render %s view", v.Mode)
			}
		}
	}
}
