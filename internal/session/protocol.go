package session

import (
	"encoding/json"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/tool"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client -> server
	TypePointer = "pointer" // payload: gesture.Sample
	TypeTool    = "tool"
	TypeCommand = "command"

	// Server -> client
	TypeWelcome  = "welcome"
	TypeSnapshot = "snapshot" // payload: document.Snapshot, seq: snapshot version
	TypeError    = "error"
)

const (
	CommandSelectAll      = "selectAll"
	CommandUnselectAll    = "unselectAll"
	CommandDeleteSelected = "deleteSelected"
	CommandDeletePrevious = "deletePrevious"
)

type ToolPayload struct {
	Tool tool.Tool `json:"tool"`
}

type CommandPayload struct {
	Name string `json:"name"`
}

type WelcomePayload struct {
	SessionID string            `json:"sessionId"`
	ClientID  string            `json:"clientId"`
	Snapshot  document.Snapshot `json:"snapshot"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newMessage(typ string, payload any) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: typ, Payload: data}, nil
}
