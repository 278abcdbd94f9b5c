package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"jobtalk/internal/preference"
	"jobtalk/internal/repository"
	"jobtalk/internal/ws"

	"github.com/google/uuid"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

type ChatMessage struct {
	ID        uuid.UUID          `json:"id"`
	Text      string             `json:"text"`
	Sender    string             `json:"sender"`
	Timestamp time.Time          `json:"timestamp"`
	Action    *preference.Action `json:"action,omitempty"`
}

type ChatSession struct {
	Messages    []ChatMessage         `json:"messages"`
	Preferences preference.Preference `json:"preferences"`
}

type ChatUsecase interface {
	Submit(ctx context.Context, sessionID, text string) (ChatMessage, *ChatMessage, error)
	History(ctx context.Context, sessionID string) (ChatSession, error)
	ResetHistory(ctx context.Context, sessionID string) error
	ResetPreferences(ctx context.Context, sessionID string) error
}

// Chat drives the conversation: user messages append synchronously, bot
// replies append after the configured delay, and both the transcript and the
// accumulated preference set are persisted to the store after every
// mutation. History and preferences are held under separate keys so their
// reset operations stay decoupled.
type Chat struct {
	store   Store
	archive repository.ConversationRepository
	delay   time.Duration
	logger  *log.Logger

	mu sync.Mutex
}

func NewChatUsecase(store Store, archive repository.ConversationRepository, delay time.Duration, logger *log.Logger) *Chat {
	return &Chat{store: store, archive: archive, delay: delay, logger: logger}
}

func historyKey(sessionID string) string {
	return "chat:history:" + sessionID
}

func prefsKey(sessionID string) string {
	return "chat:prefs:" + sessionID
}

// Submit appends the user message immediately, then waits out the reply
// delay before computing and appending the bot message. When the caller's
// context ends during the wait the pending reply is dropped and never
// mutates session state. Concurrent submissions are not serialized: bot
// messages append in timer-completion order, not submission order.
func (u *Chat) Submit(ctx context.Context, sessionID, text string) (ChatMessage, *ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatMessage{}, nil, ErrEmptyMessage
	}
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		sessionID = "global"
	}

	userMsg := ChatMessage{
		ID:        uuid.New(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: time.Now().UTC(),
	}
	u.appendMessage(ctx, sessionID, userMsg)

	if u.delay > 0 {
		timer := time.NewTimer(u.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return userMsg, nil, nil
		case <-timer.C:
		}
	}

	res := preference.Extract(text)
	botMsg := ChatMessage{
		ID:        uuid.New(),
		Text:      res.Confirmation,
		Sender:    SenderBot,
		Timestamp: time.Now().UTC(),
		Action:    res.Action,
	}
	u.appendMessage(ctx, sessionID, botMsg)

	if !res.Preference.IsEmpty() {
		u.mergePreferences(ctx, sessionID, res.Preference)
	}

	ws.NotifyChatMessage(sessionID, ws.ChatMessageEvent{
		ID:          botMsg.ID.String(),
		Sender:      botMsg.Sender,
		Text:        botMsg.Text,
		ActionLabel: actionLabel(botMsg.Action),
		ActionPath:  actionPath(botMsg.Action),
		Timestamp:   botMsg.Timestamp.Format(time.RFC3339),
	})

	return userMsg, &botMsg, nil
}

func (u *Chat) History(ctx context.Context, sessionID string) (ChatSession, error) {
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		sessionID = "global"
	}

	session := ChatSession{Messages: []ChatMessage{}}
	if _, err := u.store.GetJSON(ctx, historyKey(sessionID), &session.Messages); err != nil && u.logger != nil {
		u.logger.Printf("[Chat] history read error session=%s err=%v", sessionID, err)
	}
	if _, err := u.store.GetJSON(ctx, prefsKey(sessionID), &session.Preferences); err != nil && u.logger != nil {
		u.logger.Printf("[Chat] preference read error session=%s err=%v", sessionID, err)
	}
	return session, nil
}

// ResetHistory clears the transcript only; the preference set survives.
func (u *Chat) ResetHistory(ctx context.Context, sessionID string) error {
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		sessionID = "global"
	}
	if u.archive != nil {
		if err := u.archive.DeleteBySession(ctx, sessionID); err != nil && u.logger != nil {
			u.logger.Printf("[Chat] archive delete error session=%s err=%v", sessionID, err)
		}
	}
	return u.store.Delete(ctx, historyKey(sessionID))
}

// ResetPreferences clears the accumulated preference set only.
func (u *Chat) ResetPreferences(ctx context.Context, sessionID string) error {
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		sessionID = "global"
	}
	return u.store.Delete(ctx, prefsKey(sessionID))
}

func (u *Chat) appendMessage(ctx context.Context, sessionID string, m ChatMessage) {
	u.mu.Lock()
	var msgs []ChatMessage
	if _, err := u.store.GetJSON(ctx, historyKey(sessionID), &msgs); err != nil && u.logger != nil {
		u.logger.Printf("[Chat] history read error session=%s err=%v", sessionID, err)
	}
	msgs = append(msgs, m)
	if err := u.store.SetJSON(ctx, historyKey(sessionID), msgs, 0); err != nil && u.logger != nil {
		u.logger.Printf("[Chat] history write error session=%s err=%v", sessionID, err)
	}
	u.mu.Unlock()

	if u.archive == nil {
		return
	}
	err := u.archive.SaveMessage(ctx, repository.ConversationMessage{
		ID:          m.ID,
		SessionID:   sessionID,
		Sender:      m.Sender,
		Text:        m.Text,
		ActionLabel: actionLabel(m.Action),
		ActionPath:  actionPath(m.Action),
		CreatedAt:   m.Timestamp,
	})
	if err != nil && u.logger != nil {
		u.logger.Printf("[Chat] archive write error session=%s err=%v", sessionID, err)
	}
}

func (u *Chat) mergePreferences(ctx context.Context, sessionID string, partial preference.Preference) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var current preference.Preference
	if _, err := u.store.GetJSON(ctx, prefsKey(sessionID), &current); err != nil && u.logger != nil {
		u.logger.Printf("[Chat] preference read error session=%s err=%v", sessionID, err)
	}
	merged := preference.Merge(current, partial)
	if err := u.store.SetJSON(ctx, prefsKey(sessionID), merged, 0); err != nil && u.logger != nil {
		u.logger.Printf("[Chat] preference write error session=%s err=%v", sessionID, err)
	}
}

func actionLabel(a *preference.Action) string {
	if a == nil {
		return ""
	}
	return a.Label
}

func actionPath(a *preference.Action) string {
	if a == nil {
		return ""
	}
	return a.Path
}

var _ ChatUsecase = (*Chat)(nil)
