package game

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// messageDuration is how long a message stays on screen, in seconds.
const messageDuration = 3.0

// tickDuration is the time covered by one Update call (60 TPS).
const tickDuration = 1.0 / 60.0
