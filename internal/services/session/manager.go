package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/enums"
	"github.com/slvrxyzz/telegram-media-bot/internal/infra/telegram"
)

const sweepInterval = time.Minute

// Session is the per-chat conversation state. FileID and MediaType carry
// the pending upload between the media step and the description step;
// EditID carries the target between the id step and the text step.
type Session struct {
	State        telegram.State
	FileID       string
	FileUniqueID string
	MediaType    enums.MediaType
	EditID       int64
	UpdatedAt    time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[int64]Session

	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

func NewManager(ttl time.Duration, logger *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions: make(map[int64]Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Get returns the chat's session, expiring it lazily when stale.
func (m *Manager) Get(chatID int64) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[chatID]
	if !ok {
		return Session{State: telegram.StateIdle}
	}
	if m.now().Sub(session.UpdatedAt) > m.ttl {
		delete(m.sessions, chatID)
		return Session{State: telegram.StateIdle}
	}
	return session
}

func (m *Manager) State(chatID int64) telegram.State {
	return m.Get(chatID).State
}

// Put stores the session as-is, stamping UpdatedAt.
func (m *Manager) Put(chatID int64, session Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.UpdatedAt = m.now()
	m.sessions[chatID] = session
}

// SetState replaces the chat's session with a fresh one in the given
// state. Starting a new flow always discards leftovers of the old one.
func (m *Manager) SetState(chatID int64, state telegram.State) {
	m.Put(chatID, Session{State: state})
}

func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
}

// SweepExpired drops sessions idle longer than the ttl and returns how
// many were removed.
func (m *Manager) SweepExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	removed := 0
	for chatID, session := range m.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(m.sessions, chatID)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions once a minute until the context ends.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := m.SweepExpired(); removed > 0 {
				m.logger.Debug("expired chat sessions removed", "count", removed)
			}
		}
	}
}
