package game

import "github.com/charmbracelet/log"

// BestScore tracks the highest score ever achieved. It is loaded once and
// only ever increases.
type BestScore struct {
	value  int
	store  BestScoreStore
	logger *log.Logger
}

// loadBestScore reads the persisted best. A missing store, a read failure
// or a corrupt (negative) value all start from zero.
func loadBestScore(store BestScoreStore, logger *log.Logger) *BestScore {
	b := &BestScore{store: store, logger: logger}
	if store == nil {
		return b
	}

	v, err := store.LoadBestScore()
	if err != nil {
		logger.Warn("could not load best score", "error", err)
		return b
	}
	if v < 0 {
		logger.Warn("ignoring corrupt best score", "value", v)
		return b
	}
	b.value = v
	return b
}

// Value returns the current best score.
func (b *BestScore) Value() int {
	return b.value
}

// Offer records a finished run's score and reports whether it set a new
// record. Records are persisted best-effort.
func (b *BestScore) Offer(score int) bool {
	if score <= b.value {
		return false
	}
	b.value = score

	if b.store != nil {
		if err := b.store.SaveBestScore(score); err != nil {
			b.logger.Warn("could not save best score", "score", score, "error", err)
		}
	}
	return true
}
