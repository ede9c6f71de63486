// Package session hosts editors behind HTTP and websocket endpoints. Each
// session owns one editor.Editor and accepts a single attached client, which
// is the only writer for that board.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inamate/whiteboard/internal/editor"
	"github.com/inamate/whiteboard/internal/gesture"
	"github.com/inamate/whiteboard/internal/typeid"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrAttached = errors.New("session already has a client attached")
	ErrLimit    = errors.New("session limit reached")
)

type Session struct {
	ID     string
	Editor *editor.Editor

	mu         sync.Mutex
	client     *Client
	lastActive time.Time
}

// Attached reports whether a client currently drives the session.
func (s *Session) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client != nil
}

type Options struct {
	// MaxSessions caps live sessions. Zero means no limit.
	MaxSessions int
	// TTL is how long a session with no client survives. Zero disables
	// reaping.
	TTL time.Duration
	// Gesture is passed to every new editor.
	Gesture gesture.Options
	Logger  *slog.Logger
}

type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	logger   *slog.Logger
	now      func() time.Time
}

func NewHub(opts Options) *Hub {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		sessions: make(map[string]*Session),
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

// Run reaps idle sessions until ctx is done, then closes every attached
// client.
func (h *Hub) Run(ctx context.Context) {
	period := h.opts.TTL / 2
	if period <= 0 {
		period = time.Minute
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := h.Reap(); n > 0 {
				h.logger.Info("reaped idle sessions", "count", n)
			}
		case <-ctx.Done():
			h.Stop()
			return
		}
	}
}

// Stop closes all attached clients and forgets every session.
func (h *Hub) Stop() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*Session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.mu.Lock()
		c := s.client
		s.mu.Unlock()
		if c != nil {
			c.Close("server shutting down")
		}
	}
}

// Create starts a new session. With sample set the board is seeded with the
// demo scene.
func (h *Hub) Create(sample bool) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.opts.MaxSessions > 0 && len(h.sessions) >= h.opts.MaxSessions {
		return nil, ErrLimit
	}

	id := typeid.NewSessionID()
	s := &Session{
		ID: id,
		Editor: editor.New(
			editor.WithLogger(h.logger.With("session", id)),
			editor.WithGestureOptions(h.opts.Gesture),
		),
		lastActive: h.now(),
	}
	if sample {
		s.Editor.LoadSample()
	}
	h.sessions[id] = s

	h.logger.Info("session created", "session", id, "sample", sample)
	return s, nil
}

func (h *Hub) Get(id string) (*Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return s, nil
}

// Delete removes a session and disconnects its client.
func (h *Hub) Delete(id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()

	if !ok {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}

	s.mu.Lock()
	c := s.client
	s.mu.Unlock()
	if c != nil {
		c.Close("session deleted")
	}

	h.logger.Info("session deleted", "session", id)
	return nil
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Reap deletes sessions that have had no client for longer than the TTL and
// returns how many were removed.
func (h *Hub) Reap() int {
	if h.opts.TTL <= 0 {
		return 0
	}
	cutoff := h.now().Add(-h.opts.TTL)

	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for id, s := range h.sessions {
		s.mu.Lock()
		idle := s.client == nil && s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(h.sessions, id)
			n++
		}
	}
	return n
}

func (h *Hub) attach(s *Session, c *Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return fmt.Errorf("attach %s: %w", s.ID, ErrAttached)
	}
	s.client = c
	s.lastActive = h.now()
	h.logger.Info("client attached", "session", s.ID, "client", c.ClientID)
	return nil
}

func (h *Hub) detach(s *Session, c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != c {
		return
	}
	s.client = nil
	s.lastActive = h.now()
	h.logger.Info("client detached", "session", s.ID, "client", c.ClientID)
}

func (h *Hub) touch(s *Session) {
	s.mu.Lock()
	s.lastActive = h.now()
	s.mu.Unlock()
}
