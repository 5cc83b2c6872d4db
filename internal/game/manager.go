package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aidanfhague/Habere-Dunelm/internal/board"
)

// Session is one managed game: the engine plus identifying metadata.
// The engine itself is single-threaded; concurrent hosts must funnel
// all actions through Do.
type Session struct {
	ID         string
	CreateTime time.Time

	engine   *Engine
	recorder *ReplayRecorder
	seq      int
	mu       sync.Mutex
}

// Engine returns the underlying engine. Callers that use it directly
// must hold off concurrent Do calls themselves.
func (s *Session) Engine() *Engine { return s.engine }

// Do serializes one action against the session's engine.
func (s *Session) Do(action Action) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.engine.Apply(action)
	s.record(res)
	return res
}

// StartTurn serializes a turn-start check.
func (s *Session) StartTurn() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.engine.StartTurnIfNeeded()
	s.record(res)
	return res
}

// record snapshots the state after an accepted action. Rejected
// actions leave the state untouched and are not recorded.
func (s *Session) record(res Result) {
	if s.recorder == nil || !res.OK {
		return
	}
	s.seq++
	s.recorder.RecordState(s.ID, TakeSnapshot(s.engine.State(), s.seq, res.Events))
}

// Manager tracks active games by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	recorder *ReplayRecorder
	logger   *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// EnableRecording makes every subsequently created game record a
// replay into dir.
func (m *Manager) EnableRecording(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorder = NewReplayRecorder(m.logger, dir)
}

// Recorder returns the replay recorder, or nil when recording is off.
func (m *Manager) Recorder() *ReplayRecorder {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.recorder
}

// CreateGame builds a fresh game: standard board, shuffled decks, and
// an engine seeded for deterministic replay.
func (m *Manager) CreateGame(cfg Config, playerNames []string, seed int64) (*Session, error) {
	if len(playerNames) < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", len(playerNames))
	}

	b := board.Standard()

	players := make([]*Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, NewPlayer(name, cfg.StartingCash))
	}

	state, err := NewState(b, players)
	if err != nil {
		return nil, fmt.Errorf("building state: %w", err)
	}

	deckRNG := rand.New(rand.NewSource(seed))
	state.SetDecks(
		NewDeck(ChanceCards(), deckRNG),
		NewDeck(CommunityChestCards(), deckRNG),
	)

	engine := NewEngine(cfg, NewSeededDice(seed), state, m.logger)

	session := &Session{
		ID:         uuid.New().String(),
		CreateTime: time.Now(),
		engine:     engine,
	}

	m.mu.Lock()
	if m.recorder != nil {
		session.recorder = m.recorder
		m.recorder.StartRecording(session.ID)
	}
	m.sessions[session.ID] = session
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Info("game created",
			zap.String("game_id", session.ID),
			zap.Int("players", len(playerNames)),
			zap.Int64("seed", seed),
		)
	}

	return session, nil
}

// GetGame looks up a session by ID.
func (m *Manager) GetGame(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, fmt.Errorf("game %s not found", id)
	}
	return session, nil
}

// RemoveGame drops a finished or abandoned session.
func (m *Manager) RemoveGame(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Info("game removed", zap.String("game_id", id))
	}
}

// GameCount returns the number of tracked sessions.
func (m *Manager) GameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
