// Package api publishes the game to spectators: the latest view over plain
// HTTP and a live stream of views over a websocket.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// SendBuffer is how many views may queue for a slow spectator before frames
// are dropped for it.
var SendBuffer = 8

// Server is the spectator server. Render never blocks on a spectator.
type Server struct {
	hs       *http.Server
	upgrader websocket.Upgrader

	lock    sync.Mutex
	latest  []byte
	clients map[*spectator]struct{}
}

type spectator struct {
	conn *websocket.Conn
	send chan []byte
}

// New will initialize a new Server listening on addr.
func New(addr string) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: map[*spectator]struct{}{},
	}

	router := httprouter.New()
	router.GET("/state", s.state)
	router.GET("/socket", s.socket)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// Render publishes v to every spectator.
func (s *Server) Render(v controller.View) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "unable to encode view")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.latest = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			log.WithField("remote", c.conn.RemoteAddr().String()).Debug("spectator behind, frame dropped")
		}
	}
	return nil
}

// Spectators returns the number of connected websocket clients.
func (s *Server) Spectators() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.clients)
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() {
	log.Infof("holosnake spectator server listening on %s", s.hs.Addr)
	err := s.hs.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Errorf("Error while listening: %v", err)
	}
}

// Shutdown stops the listener and disconnects spectators.
func (s *Server) Shutdown(ctx context.Context) error {
	s.lock.Lock()
	for c := range s.clients {
		c.conn.Close()
	}
	s.lock.Unlock()
	return s.hs.Shutdown(ctx)
}

func (s *Server) state(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.lock.Lock()
	data := s.latest
	s.lock.Unlock()

	if data == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Error("unable to write state")
	}
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("unable to upgrade spectator connection")
		return
	}

	c := &spectator{conn: conn, send: make(chan []byte, SendBuffer)}
	s.lock.Lock()
	s.clients[c] = struct{}{}
	if s.latest != nil {
		c.send <- s.latest
	}
	s.lock.Unlock()
	log.WithField("remote", conn.RemoteAddr().String()).Info("spectator connected")

	done := make(chan struct{})
	go s.writeLoop(c, done)

	// Spectators never send anything, reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.lock.Lock()
	delete(s.clients, c)
	s.lock.Unlock()
	close(done)
	conn.Close()
	log.WithField("remote", conn.RemoteAddr().String()).Info("spectator disconnected")
}

func (s *Server) writeLoop(c *spectator, done <-chan struct{}) {
	for {
		select {
		case data := <-c.send:
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.WithError(err).Debug("unable to write to spectator")
				return
			}
		case <-done:
			return
		}
	}
}
