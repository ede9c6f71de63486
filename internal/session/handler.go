package session

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/inamate/whiteboard/internal/auth"
)

type Handler struct {
	hub     *Hub
	auth    *auth.Service
	origins []string
}

// NewHandler serves the session API. allowedOrigins are full origins such
// as "http://localhost:5173"; only their hosts are matched for websockets.
func NewHandler(hub *Hub, authSvc *auth.Service, allowedOrigins []string) *Handler {
	var patterns []string
	for _, o := range allowedOrigins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return &Handler{hub: hub, auth: authSvc, origins: patterns}
}

// Routes registers the session endpoints on r.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/sessions", h.Create).Methods("POST", "OPTIONS")

	r.Handle("/sessions/{sessionId}/snapshot", h.auth.AuthMiddleware(http.HandlerFunc(h.Snapshot))).Methods("GET", "OPTIONS")
	r.Handle("/sessions/{sessionId}", h.auth.AuthMiddleware(http.HandlerFunc(h.Delete))).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/ws/session/{sessionId}", h.ServeWS)
}

type createRequest struct {
	Sample bool `json:"sample"`
}

type createResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	s, err := h.hub.Create(req.Sample)
	if err != nil {
		if errors.Is(err, ErrLimit) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "too many sessions"})
			return
		}
		slog.Error("create session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	token, err := h.auth.IssueToken(s.ID)
	if err != nil {
		slog.Error("issue session token", "error", err)
		h.hub.Delete(s.ID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{ID: s.ID, Token: token})
}

func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	s, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Editor.Snapshot())
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}
	if err := h.hub.Delete(s.ID); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizedSession resolves the path session and checks it against the
// token's session.
func (h *Handler) authorizedSession(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sessionID := mux.Vars(r)["sessionId"]

	if auth.SessionIDFromContext(r.Context()) != sessionID {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "token is for another session"})
		return nil, false
	}

	s, err := h.hub.Get(sessionID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil, false
	}
	return s, true
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}
	if err := h.auth.Authorize(token, sessionID); err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	s, err := h.hub.Get(sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	client := NewClient(h.hub, s, uuid.New().String())
	if err := h.hub.attach(s, client); err != nil {
		http.Error(w, "session already attached", http.StatusConflict)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		h.hub.detach(s, client)
		return
	}

	client.Serve(r.Context(), conn)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
