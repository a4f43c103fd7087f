package manager

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// RunState is the lifecycle of one run
type RunState int

const (
	Running RunState = iota
	Paused
	Over
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// maxScoreHistory bounds the in-memory score list
const maxScoreHistory = 200

type GameStats struct {
	HighScore    int   `json:"highScore"`
	ScoreHistory []int `json:"scoreHistory"`
}

// StateManager tracks the run state plus session scores. It never touches
// the filesystem unless SaveStats or LoadStats is called.
type StateManager struct {
	state        RunState
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		state:        Running,
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) State() RunState {
	return sm.state
}

// Pause has no effect unless the run is Running
func (sm *StateManager) Pause() bool {
	if sm.state != Running {
		return false
	}
	sm.state = Paused
	return true
}

// Resume has no effect unless the run is Paused
func (sm *StateManager) Resume() bool {
	if sm.state != Paused {
		return false
	}
	sm.state = Running
	return true
}

// Finish ends the run and records its final score
func (sm *StateManager) Finish(score int) {
	sm.state = Over
	sm.UpdateScore(score)
	sm.AddToHistory(score)
}

// Restart begins a new run
func (sm *StateManager) Restart() {
	sm.state = Running
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) AddToHistory(score int) {
	if len(sm.scoreHistory) >= maxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return append([]int(nil), sm.scoreHistory...)
}

// Summary condenses the score history of finished runs
type Summary struct {
	GamesPlayed  int
	AverageScore float64
	MedianScore  float64
	MaxScore     int
}

func (sm *StateManager) Summary() Summary {
	n := len(sm.scoreHistory)
	if n == 0 {
		return Summary{}
	}

	scores := append([]int(nil), sm.scoreHistory...)
	sort.Ints(scores)

	total := 0
	for _, score := range scores {
		total += score
	}

	median := float64(scores[n/2])
	if n%2 == 0 {
		median = float64(scores[n/2-1]+scores[n/2]) / 2
	}

	return Summary{
		GamesPlayed:  n,
		AverageScore: float64(total) / float64(n),
		MedianScore:  median,
		MaxScore:     scores[n-1],
	}
}

func (sm *StateManager) SaveStats(filename string) error {
	stats := GameStats{
		HighScore:    sm.highScore,
		ScoreHistory: sm.scoreHistory,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode stats")
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "write stats %s", filename)
	}
	return nil
}

func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "read stats %s", filename)
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "decode stats %s", filename)
	}

	sm.highScore = stats.HighScore
	sm.scoreHistory = stats.ScoreHistory
	if sm.scoreHistory == nil {
		sm.scoreHistory = make([]int, 0)
	}
	if len(sm.scoreHistory) > maxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[len(sm.scoreHistory)-maxScoreHistory:]
	}
	return nil
}
