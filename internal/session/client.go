package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/gesture"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
)

// Client is the websocket connection driving a session.
type Client struct {
	hub     *Hub
	session *Session
	conn    *websocket.Conn
	send    chan []byte
	logger  *slog.Logger

	done        chan struct{}
	closeOnce   sync.Once
	closeReason string

	ClientID string
}

func NewClient(hub *Hub, s *Session, clientID string) *Client {
	return &Client{
		hub:      hub,
		session:  s,
		send:     make(chan []byte, 256),
		done:     make(chan struct{}),
		logger:   hub.logger.With("session", s.ID, "client", clientID),
		ClientID: clientID,
	}
}

// Close asks the write pump to close the connection.
func (c *Client) Close(reason string) {
	c.closeOnce.Do(func() {
		c.closeReason = reason
		close(c.done)
	})
}

// Serve greets the client and runs both pumps until the connection ends.
func (c *Client) Serve(ctx context.Context, conn *websocket.Conn) {
	c.conn = conn

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshots, unsubscribe := c.session.Editor.Subscribe()
	defer unsubscribe()

	welcome, err := newMessage(TypeWelcome, WelcomePayload{
		SessionID: c.session.ID,
		ClientID:  c.ClientID,
		Snapshot:  c.session.Editor.Snapshot(),
	})
	if err != nil {
		c.logger.Error("marshal welcome", "error", err)
		return
	}
	c.Send(welcome)

	go c.WritePump(ctx, snapshots)
	c.ReadPump(ctx)
}

func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.detach(c.session, c)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			c.logger.Debug("read error", "error", err)
			return
		}
		c.hub.touch(c.session)

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Warn("invalid message", "error", err)
			c.sendError(0, "invalid message")
			continue
		}

		if !c.dispatch(ctx, &msg) {
			return
		}
	}
}

func (c *Client) WritePump(ctx context.Context, snapshots <-chan document.Snapshot) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message := <-c.send:
			if err := c.write(ctx, message); err != nil {
				c.logger.Debug("write error", "error", err)
				return
			}

		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			msg, err := newMessage(TypeSnapshot, snap)
			if err != nil {
				c.logger.Error("marshal snapshot", "error", err)
				continue
			}
			msg.SessionID = c.session.ID
			msg.Seq = int64(snap.Version)
			data, err := json.Marshal(msg)
			if err != nil {
				c.logger.Error("marshal message", "error", err)
				continue
			}
			if err := c.write(ctx, data); err != nil {
				c.logger.Debug("write error", "error", err)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-c.done:
			c.conn.Close(websocket.StatusGoingAway, c.closeReason)
			return

		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) Send(msg *Message) {
	msg.SessionID = c.session.ID
	msg.ClientID = c.ClientID

	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("marshal message", "error", err)
		return
	}

	select {
	case c.send <- data:
	default:
		c.logger.Warn("client send buffer full, dropping message", "type", msg.Type)
	}
}

func (c *Client) write(ctx context.Context, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}

func (c *Client) sendError(seq int64, text string) {
	msg, err := newMessage(TypeError, ErrorPayload{Message: text})
	if err != nil {
		return
	}
	msg.Seq = seq
	c.Send(msg)
}

// dispatch applies one message to the editor. It returns false when the
// editor panicked; the session is then dropped since its state can no
// longer be trusted.
func (c *Client) dispatch(ctx context.Context, msg *Message) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ok = false
		c.logger.Error("editor panic", "panic", r, "type", msg.Type, "seq", msg.Seq)

		if errMsg, err := newMessage(TypeError, ErrorPayload{Message: "internal error"}); err == nil {
			errMsg.SessionID, errMsg.ClientID, errMsg.Seq = c.session.ID, c.ClientID, msg.Seq
			if data, err := json.Marshal(errMsg); err == nil {
				c.write(ctx, data)
			}
		}
		c.conn.Close(websocket.StatusInternalError, "internal error")
		if err := c.hub.Delete(c.session.ID); err != nil {
			c.logger.Debug("drop session", "error", err)
		}
	}()

	if err := c.handle(msg); err != nil {
		c.logger.Warn("rejected message", "type", msg.Type, "error", err)
		c.sendError(msg.Seq, err.Error())
	}
	return true
}

func (c *Client) handle(msg *Message) error {
	ed := c.session.Editor

	switch msg.Type {
	case TypePointer:
		var s gesture.Sample
		if err := json.Unmarshal(msg.Payload, &s); err != nil {
			return fmt.Errorf("pointer payload: %w", err)
		}
		if !s.Kind.Valid() {
			return fmt.Errorf("pointer payload: missing or unknown kind")
		}
		ed.Pointer(s)

	case TypeTool:
		var p ToolPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("tool payload: %w", err)
		}
		return ed.SetTool(p.Tool)

	case TypeCommand:
		var p CommandPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("command payload: %w", err)
		}
		switch p.Name {
		case CommandSelectAll:
			ed.SelectAll()
		case CommandUnselectAll:
			ed.UnselectAll()
		case CommandDeleteSelected:
			ed.DeleteSelected()
		case CommandDeletePrevious:
			ed.DeletePrevious()
		default:
			return fmt.Errorf("unknown command %q", p.Name)
		}

	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}
