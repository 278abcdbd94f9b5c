package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type ChatMessageEvent struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Sender      string `json:"sender"`
	Text        string `json:"text"`
	ActionLabel string `json:"actionLabel,omitempty"`
	ActionPath  string `json:"actionPath,omitempty"`
	Timestamp   string `json:"timestamp"`
}

type NoticeEvent struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyChatMessage pushes a bot reply to the subscribers of one session.
func NotifyChatMessage(sessionID string, evt ChatMessageEvent) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return
	}

	evt.Type = "chat_message"
	if evt.Timestamp == "" {
		evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(sessionID, b)
}

// NotifyNotice pushes a transient notice to every connected client. Clients
// show a single notice at a time; a new one replaces the current one.
func NotifyNotice(text string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	evt := NoticeEvent{
		Type:      "notice",
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast("", b)
}
