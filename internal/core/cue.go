package core

// Cue names a sound effect. Cues are fire-and-forget.
type Cue string

const (
	CueJump     Cue = "jump"     // First and double jump, at different volumes
	CueCoin     Cue = "coin"     // Coin and power-star pickups, at different volumes
	CueGameOver Cue = "gameover" // Fatal collision
	CueStart    Cue = "start"    // Run started
)
