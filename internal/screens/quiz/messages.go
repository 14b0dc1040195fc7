package quiz

import "time"

// beginMsg kicks off the first question after the screen is pushed.
type beginMsg struct{}

// autoAdvanceMsg fires when the feedback display period ends. It carries
// the advance token issued with the answer; a stale token is ignored.
type autoAdvanceMsg struct {
	token int
}

// aidPollMsg is sent at short intervals while a memory aid is being
// generated in the background.
type aidPollMsg time.Time
