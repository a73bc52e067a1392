// Package audio plays short synthesized cues for dock interactions
package audio

import "time"

// Cue identifies a sound effect
type Cue int

const (
	CueDrop     Cue = iota // Window docked
	CueDropFail            // Drop rejected or cancelled
	CueSplit               // Leaf split
	CueCollapse            // Empty branch collapsed
	cueCount
)

var cueNames = [cueCount]string{"drop", "drop-fail", "split", "collapse"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Cue timing
const (
	dropNoteDuration  = 70 * time.Millisecond
	dropAttack        = 4 * time.Millisecond
	dropRelease       = 40 * time.Millisecond
	failDuration      = 150 * time.Millisecond
	failAttack        = 5 * time.Millisecond
	failRelease       = 60 * time.Millisecond
	tickDuration      = 25 * time.Millisecond
	tickAttack        = 2 * time.Millisecond
	tickRelease       = 15 * time.Millisecond
	collapseDuration  = 90 * time.Millisecond
	collapseAttack    = 3 * time.Millisecond
	collapseRelease   = 70 * time.Millisecond
	speakerBufferTime = 100 * time.Millisecond
)
