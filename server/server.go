package server

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"snake-arena/game"

	"github.com/gorilla/websocket"
)

const (
	WebSocketPath = "/ws"
	StatePath     = "/state"
	MaxConns      = 64
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:    1024,
	WriteBufferSize:   4096,
	EnableCompression: true,
}

// Server exposes one GameLoop over HTTP
type Server struct {
	loop   *GameLoop
	conns  *ConnManager
	logger *log.Logger
}

func NewServer(g *game.Game, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	conns := NewConnManager()
	return &Server{
		loop:   NewGameLoop(g, conns, logger),
		conns:  conns,
		logger: logger,
	}
}

func (s *Server) Loop() *GameLoop {
	return s.loop
}

// Run drives the game loop until ctx ends
func (s *Server) Run(ctx context.Context) {
	s.loop.Run(ctx)
}

// Handler routes the websocket endpoint and a JSON state probe
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(WebSocketPath, s.handleWS)
	mux.HandleFunc(StatePath, s.handleState)
	return mux
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.loop.LastState()); err != nil {
		s.logger.Printf("state probe: %v", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("ws upgrade error: %v", err)
		return
	}

	if s.conns.Count() >= MaxConns {
		_ = ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "server full"))
		ws.Close()
		return
	}

	conn := NewConn(ws)
	pilot := s.conns.Add(conn)
	s.logger.Printf("client connected: %s (pilot=%v)", conn.ID, pilot)

	if err := conn.Send(s.loop.Welcome(conn)); err != nil {
		s.logger.Printf("welcome %s: %v", conn.ID, err)
	}

	onDisconnect := func(c *Conn) {
		next := s.conns.Remove(c.ID)
		s.logger.Printf("client disconnected: %s", c.ID)
		if next != nil {
			s.logger.Printf("pilot handed to %s", next.ID)
			if err := next.Send(s.loop.Welcome(next)); err != nil {
				s.logger.Printf("welcome %s: %v", next.ID, err)
			}
		}
	}

	// Blocks until the client disconnects
	conn.ReadLoop(s.logger, s.loop.HandleMessage, onDisconnect)
}
