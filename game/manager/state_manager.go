package manager

import "rsnake/game/types"

// maxScoreHistory bounds the finished-game history; older scores are dropped.
const maxScoreHistory = 200

// StateManager tracks score and the running flag for one game, plus the
// session high score and the finished-game history. Nothing is written to disk.
type StateManager struct {
	score        uint64
	running      bool
	cleared      bool
	steps        int
	highScore    uint64
	scoreHistory []uint64
}

func NewStateManager() *StateManager {
	return &StateManager{
		running:      true,
		scoreHistory: make([]uint64, 0),
	}
}

func (sm *StateManager) Score() uint64 {
	return sm.score
}

func (sm *StateManager) Running() bool {
	return sm.running
}

func (sm *StateManager) Cleared() bool {
	return sm.cleared
}

func (sm *StateManager) Steps() int {
	return sm.steps
}

// Tick counts one step taken while running.
func (sm *StateManager) Tick() {
	sm.steps++
}

// AddFruit credits one eaten fruit.
func (sm *StateManager) AddFruit() {
	sm.score += types.FruitScore
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// Stop freezes the game and records the final score.
func (sm *StateManager) Stop(cleared bool) {
	if !sm.running {
		return
	}
	sm.running = false
	sm.cleared = cleared
	if len(sm.scoreHistory) == maxScoreHistory {
		sm.scoreHistory = append(sm.scoreHistory[:0], sm.scoreHistory[1:]...)
	}
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
}

// Reset starts a new game. The high score and history survive.
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.running = true
	sm.cleared = false
	sm.steps = 0
}

func (sm *StateManager) HighScore() uint64 {
	return sm.highScore
}

// ScoreHistory returns the final scores of the most recent finished games,
// oldest first.
func (sm *StateManager) ScoreHistory() []uint64 {
	history := make([]uint64, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}
