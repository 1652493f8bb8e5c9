package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/battlesnakeio/holosnake/menu"
	"github.com/battlesnakeio/holosnake/rules"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func testView(score int) controller.View {
	return controller.View{
		Mode: controller.ModePlaying,
		Menu: menu.View{Screen: menu.ScreenMain, Options: []string{"Play"}},
		Game: &rules.Snapshot{SessionID: "abc", Level: 2, Score: score},
	}
}

func TestStateEmpty(t *testing.T) {
	s := New(":0")

	req, _ := http.NewRequest("GET", "/state", nil)
	rr := httptest.NewRecorder()

	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestState(t *testing.T) {
	s := New(":0")
	require.NoError(t, s.Render(testView(3)))

	req, _ := http.NewRequest("GET", "/state", nil)
	rr := httptest.NewRecorder()

	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var v controller.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	require.Equal(t, controller.ModePlaying, v.Mode)
	require.Equal(t, 3, v.Game.Score)
	require.Equal(t, 2, v.Game.Level)
}

func TestStateCORS(t *testing.T) {
	s := New(":0")
	require.NoError(t, s.Render(testView(0)))

	req, _ := http.NewRequest("GET", "/state", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()

	s.hs.Handler.ServeHTTP(rr, req)
	require.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	s := New(":0")

	req, _ := http.NewRequest("GET", "/games", nil)
	rr := httptest.NewRecorder()

	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func readView(t *testing.T, c *websocket.Conn) controller.View {
	require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
	mt, data, err := c.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, mt)

	var v controller.View
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestSocketStreamsViews(t *testing.T) {
	s := New(":0")
	ts := httptest.NewServer(s.hs.Handler)
	defer ts.Close()

	require.NoError(t, s.Render(testView(1)))

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/socket"
	c, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer c.Close()

	// The latest view arrives on connect.
	require.Equal(t, 1, readView(t, c).Game.Score)
	require.Equal(t, 1, s.Spectators())

	require.NoError(t, s.Render(testView(2)))
	require.Equal(t, 2, readView(t, c).Game.Score)
}

func TestRenderDoesNotBlockOnSlowSpectator(t *testing.T) {
	s := New(":0")
	ts := httptest.NewServer(s.hs.Handler)
	defer ts.Close()

	require.NoError(t, s.Render(testView(0)))

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/socket"
	c, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer c.Close()
	readView(t, c)

	done := make(chan struct{})
	go func() {
		for i := 0; i < SendBuffer*50; i++ {
			s.Render(testView(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("render blocked on a spectator that is not reading")
	}
}
