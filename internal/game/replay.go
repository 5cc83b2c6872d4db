package game

import (
	"compress/gzip"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PlayerSnapshot is the observable per-player state at one point of a
// recorded game.
type PlayerSnapshot struct {
	Name               string `json:"name"`
	Cash               int    `json:"cash"`
	Position           int    `json:"position"`
	InJail             bool   `json:"in_jail"`
	JailTurnsRemaining int    `json:"jail_turns_remaining,omitempty"`
	Bankrupt           bool   `json:"bankrupt"`
	GetOutOfJailCards  int    `json:"get_out_of_jail_cards,omitempty"`
}

// PropertySnapshot records one tile's ownership state. Only tiles that
// deviate from the bank-owned default are captured.
type PropertySnapshot struct {
	TileIndex int  `json:"tile_index"`
	Owner     int  `json:"owner"`
	Mortgaged bool `json:"mortgaged,omitempty"`
	Buildings int  `json:"buildings,omitempty"`
}

// Snapshot is a point-in-time copy of the full observable game state,
// captured after every accepted action so a finished game can be
// stepped through.
type Snapshot struct {
	Seq             int                `json:"seq"`
	CurrentPlayer   int                `json:"current_player"`
	Phase           string             `json:"phase"`
	Status          string             `json:"status"`
	Players         []PlayerSnapshot   `json:"players"`
	Properties      []PropertySnapshot `json:"properties,omitempty"`
	HousesRemaining int                `json:"houses_remaining"`
	HotelsRemaining int                `json:"hotels_remaining"`
	Events          []string           `json:"events,omitempty"`
}

// TakeSnapshot captures the current state plus the events that
// produced it.
func TakeSnapshot(s *State, seq int, events []string) *Snapshot {
	snap := &Snapshot{
		Seq:             seq,
		CurrentPlayer:   s.CurrentPlayerIndex(),
		Phase:           s.Phase().String(),
		Status:          s.Status().String(),
		HousesRemaining: s.HousesRemaining(),
		HotelsRemaining: s.HotelsRemaining(),
		Events:          append([]string(nil), events...),
	}

	for _, p := range s.Players() {
		snap.Players = append(snap.Players, PlayerSnapshot{
			Name:               p.Name,
			Cash:               p.Cash,
			Position:           p.Position,
			InJail:             p.InJail,
			JailTurnsRemaining: p.JailTurnsRemaining,
			Bankrupt:           p.Bankrupt,
			GetOutOfJailCards:  p.CountGetOutOfJail(CardChance) + p.CountGetOutOfJail(CardCommunityChest),
		})
	}

	for idx := range s.properties {
		ps := &s.properties[idx]
		if ps.Owner == Unowned && !ps.Mortgaged && ps.Buildings == 0 {
			continue
		}
		snap.Properties = append(snap.Properties, PropertySnapshot{
			TileIndex: idx,
			Owner:     ps.Owner,
			Mortgaged: ps.Mortgaged,
			Buildings: ps.Buildings,
		})
	}

	return snap
}

// Replay is a recorded game: the sequence of snapshots after every
// accepted action, with a cursor for playback.
type Replay struct {
	GameID       string
	States       []*Snapshot
	CurrentIndex int
	mu           sync.RWMutex
}

func NewReplay(gameID string) *Replay {
	return &Replay{
		GameID: gameID,
		States: make([]*Snapshot, 0),
	}
}

// RecordState appends a snapshot.
func (r *Replay) RecordState(snapshot *Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.States = append(r.States, snapshot)
}

// Start resets the playback cursor to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CurrentIndex = 0
}

// Next advances the cursor and returns the snapshot it passed, or nil
// at the end.
func (r *Replay) Next() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CurrentIndex < len(r.States) {
		state := r.States[r.CurrentIndex]
		r.CurrentIndex++
		return state
	}
	return nil
}

// Previous steps the cursor back and returns that snapshot, or nil at
// the beginning.
func (r *Replay) Previous() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CurrentIndex > 0 {
		r.CurrentIndex--
		return r.States[r.CurrentIndex]
	}
	return nil
}

// Skip moves the cursor by count in either direction, clamped to the
// recording, and returns the snapshot there.
func (r *Replay) Skip(count int) *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	newIndex := r.CurrentIndex + count
	if newIndex >= len(r.States) {
		newIndex = len(r.States) - 1
	}
	if newIndex < 0 {
		newIndex = 0
	}

	r.CurrentIndex = newIndex
	if r.CurrentIndex < len(r.States) {
		return r.States[r.CurrentIndex]
	}
	return nil
}

func (r *Replay) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.States)
}

func (r *Replay) GetStateAt(index int) *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index >= 0 && index < len(r.States) {
		return r.States[index]
	}
	return nil
}

// replayMetadata heads a saved replay file.
type replayMetadata struct {
	GameID     string
	Timestamp  time.Time
	Version    int
	StateCount int
}

// SaveToFile writes the replay as a gzipped gob stream:
// metadata first, then each snapshot in order.
func (r *Replay) SaveToFile(directory string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	filename := filepath.Join(directory, fmt.Sprintf("%s.replay", r.GameID))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	encoder := gob.NewEncoder(gzipWriter)

	metadata := replayMetadata{
		GameID:     r.GameID,
		Timestamp:  time.Now(),
		Version:    1,
		StateCount: len(r.States),
	}
	if err := encoder.Encode(&metadata); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	for i, state := range r.States {
		if err := encoder.Encode(state); err != nil {
			return fmt.Errorf("failed to encode state %d: %w", i, err)
		}
	}

	return nil
}

// LoadReplayFromFile reads a replay previously written by SaveToFile.
func LoadReplayFromFile(directory, gameID string) (*Replay, error) {
	filename := filepath.Join(directory, fmt.Sprintf("%s.replay", gameID))

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	decoder := gob.NewDecoder(gzipReader)

	var metadata replayMetadata
	if err := decoder.Decode(&metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	if metadata.Version != 1 {
		return nil, fmt.Errorf("unsupported replay version: %d", metadata.Version)
	}

	replay := NewReplay(metadata.GameID)
	for i := 0; i < metadata.StateCount; i++ {
		var state Snapshot
		if err := decoder.Decode(&state); err != nil {
			return nil, fmt.Errorf("failed to decode state %d: %w", i, err)
		}
		replay.States = append(replay.States, &state)
	}

	return replay, nil
}

// ExportJSON writes the recorded snapshots as a JSON array for
// external inspection.
func (r *Replay) ExportJSON(w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.States)
}

// ReplayRecorder manages replay recording across game sessions.
type ReplayRecorder struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	replays map[string]*Replay
	enabled map[string]bool
	saveDir string
}

func NewReplayRecorder(logger *zap.Logger, saveDir string) *ReplayRecorder {
	return &ReplayRecorder{
		logger:  logger,
		replays: make(map[string]*Replay),
		enabled: make(map[string]bool),
		saveDir: saveDir,
	}
}

// StartRecording begins capturing snapshots for a game.
func (rr *ReplayRecorder) StartRecording(gameID string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	rr.replays[gameID] = NewReplay(gameID)
	rr.enabled[gameID] = true

	if rr.logger != nil {
		rr.logger.Debug("replay recording started", zap.String("game_id", gameID))
	}
}

// StopRecording stops capturing but keeps what has been recorded.
func (rr *ReplayRecorder) StopRecording(gameID string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	rr.enabled[gameID] = false
}

// RecordState appends a snapshot if recording is enabled for the game.
func (rr *ReplayRecorder) RecordState(gameID string, snapshot *Snapshot) {
	rr.mu.RLock()
	replay, exists := rr.replays[gameID]
	enabled := rr.enabled[gameID]
	rr.mu.RUnlock()

	if !exists || !enabled {
		return
	}

	replay.RecordState(snapshot)
}

func (rr *ReplayRecorder) GetReplay(gameID string) (*Replay, bool) {
	rr.mu.RLock()
	defer rr.mu.RUnlock()

	replay, exists := rr.replays[gameID]
	return replay, exists
}

// SaveReplay persists a recorded game to the recorder's directory.
func (rr *ReplayRecorder) SaveReplay(gameID string) error {
	rr.mu.RLock()
	replay, exists := rr.replays[gameID]
	rr.mu.RUnlock()

	if !exists {
		return fmt.Errorf("no replay recorded for game %s", gameID)
	}

	if err := replay.SaveToFile(rr.saveDir); err != nil {
		return err
	}

	if rr.logger != nil {
		rr.logger.Info("replay saved",
			zap.String("game_id", gameID),
			zap.String("dir", rr.saveDir),
			zap.Int("states", replay.Size()),
		)
	}
	return nil
}

// LoadReplay reads a replay back from the recorder's directory.
func (rr *ReplayRecorder) LoadReplay(gameID string) (*Replay, error) {
	return LoadReplayFromFile(rr.saveDir, gameID)
}

// ClearReplay drops a recording.
func (rr *ReplayRecorder) ClearReplay(gameID string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	delete(rr.replays, gameID)
	delete(rr.enabled, gameID)
}

func (rr *ReplayRecorder) IsRecording(gameID string) bool {
	rr.mu.RLock()
	defer rr.mu.RUnlock()

	return rr.enabled[gameID]
}
