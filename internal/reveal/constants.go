package reveal

import "time"

// Phase names one frame of the staged reveal
type Phase string

const (
	PhaseInitialSpin Phase = "initial_spin"
	PhaseRevealReel1 Phase = "reveal_reel_1"
	PhaseRevealReel3 Phase = "reveal_reel_3"
	PhaseRevealReel2 Phase = "reveal_reel_2"
	PhaseIdle        Phase = "idle"
)

// Default delays between frames
const (
	DefaultReel1Delay = 1000 * time.Millisecond
	DefaultReel3Delay = 700 * time.Millisecond
	DefaultReel2Delay = 1000 * time.Millisecond
)

// MsgSpinning is shown while the reels turn
const MsgSpinning = "Spinning..."

// Log messages
const (
	LogMsgRevealStarted    = "Reveal started"
	LogMsgRevealFinished   = "Reveal finished"
	LogMsgRevealCancelled  = "Reveal cancelled"
	LogMsgRevealSuperseded = "Reveal superseded by newer spin"
	LogMsgRevealStale      = "Reveal skipped, a later spin is already showing"
	LogMsgInvalidPayload   = "Invalid spin resolved event payload"
	LogMsgShuttingDown     = "Shutting down reveal driver"
	LogMsgDriverClosed     = "Reveal driver closed, spin not animated"
)
