package manager

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SessionStats summarises finished rounds for the game over screen.
type SessionStats struct {
	Rounds       int
	HighScore    int
	AverageScore float64
	LastScore    int
}

// StateManager keeps the score history of the running process. Nothing is written to disk.
type StateManager struct {
	scoreHistory []float64
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]float64, 0),
	}
}

// AddToHistory records the final score of a round.
func (sm *StateManager) AddToHistory(score int) {
	sm.scoreHistory = append(sm.scoreHistory, float64(score))
}

// GetHighScore returns the best score of the session, or 0 before any round ends.
func (sm *StateManager) GetHighScore() int {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	return int(floats.Max(sm.scoreHistory))
}

// GetScoreHistory returns the recorded scores in order.
func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	for i, s := range sm.scoreHistory {
		out[i] = int(s)
	}
	return out
}

// Stats computes the session summary.
func (sm *StateManager) Stats() SessionStats {
	n := len(sm.scoreHistory)
	if n == 0 {
		return SessionStats{}
	}
	return SessionStats{
		Rounds:       n,
		HighScore:    sm.GetHighScore(),
		AverageScore: stat.Mean(sm.scoreHistory, nil),
		LastScore:    int(sm.scoreHistory[n-1]),
	}
}
