package constants

import "time"

// Layout Constants
const (
	// BorderColumns is the number of right-edge columns left unrendered
	BorderColumns = 1
	// BorderRows reserves the status line plus one margin row
	BorderRows = 2
)

// Key Hold Detection
const (
	// ReleaseAfterPress is the quiet time after a single press before the key
	// counts as released; covers the terminal's initial auto-repeat delay
	ReleaseAfterPress = 600 * time.Millisecond
	// ReleaseAfterRepeat is the quiet time once auto-repeat has started
	ReleaseAfterRepeat = 120 * time.Millisecond
)
