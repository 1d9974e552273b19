package tui

import "time"

// frameInterval is roughly one display refresh.
const frameInterval = 16 * time.Millisecond

// Every timer message carries the id of the session that scheduled it, so
// ticks still in flight after a session closes are dropped.

type frameMsg struct{ session string }

type progressTickMsg struct{ session string }

type completeMsg struct{ session string }
