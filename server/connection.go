package server

import (
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Conn manages a single websocket session
type Conn struct {
	ID        string
	Connected time.Time
	ws        *websocket.Conn
	mu        sync.Mutex // protects ws writes
	closed    bool
}

func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID:        uuid.New().String(),
		Connected: time.Now(),
		ws:        ws,
	}
}

// Send serializes msg to JSON and writes it to the websocket
func (c *Conn) Send(msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode message")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return errors.Wrapf(c.ws.WriteMessage(websocket.TextMessage, data), "write to %s", c.ID)
}

func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}

// ReadLoop handles incoming messages until the client disconnects
func (c *Conn) ReadLoop(logger *log.Logger, onMessage func(c *Conn, msg ClientMessage), onDisconnect func(c *Conn)) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Printf("bad message from %s: %v", c.ID, err)
			continue
		}
		onMessage(c, msg)
	}
}

// ConnManager tracks connections and which one is the pilot
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
	pilot string
}

func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection and reports whether it became the pilot
func (m *ConnManager) Add(c *Conn) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
	if m.pilot == "" {
		m.pilot = c.ID
		return true
	}
	return false
}

// Remove unregisters a connection. If it was the pilot, the oldest
// remaining connection takes over and is returned.
func (m *ConnManager) Remove(id string) *Conn {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
	if m.pilot != id {
		return nil
	}

	m.pilot = ""
	if len(m.conns) == 0 {
		return nil
	}
	next := m.oldest()
	m.pilot = next.ID
	return next
}

func (m *ConnManager) oldest() *Conn {
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Connected.Equal(list[j].Connected) {
			return list[i].ID < list[j].ID
		}
		return list[i].Connected.Before(list[j].Connected)
	})
	return list[0]
}

func (m *ConnManager) IsPilot(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return id != "" && m.pilot == id
}

func (m *ConnManager) Get(id string) (*Conn, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conns[id]
	return c, ok
}

func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a copy of all current connections
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	return list
}
