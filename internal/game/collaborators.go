package game

import "github.com/vovakirdan/tui-runner/internal/core"

// Audio plays sound cues. Implementations must not block and must swallow
// playback failures.
type Audio interface {
	Play(cue core.Cue, volume float64)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(core.Cue, float64) {}

// BestScoreStore persists the best score across process runs.
type BestScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// MemoryBestScore keeps the best score in memory. Useful for headless runs.
type MemoryBestScore struct {
	Score int
	Saves int
}

// LoadBestScore returns the stored score.
func (m *MemoryBestScore) LoadBestScore() (int, error) {
	return m.Score, nil
}

// SaveBestScore stores the score.
func (m *MemoryBestScore) SaveBestScore(score int) error {
	m.Score = score
	m.Saves++
	return nil
}
