package config

// RunStatusID is the lifecycle state of a run.
type RunStatusID int

const (
	RunPlaying  RunStatusID = iota // Ticking normally
	RunDead                        // Player health reached zero
	RunTimedOut                    // Level timer reached zero
	RunWon                         // Goal reached on the last level
)

var runStatusNames = map[RunStatusID]string{
	RunPlaying:  "playing",
	RunDead:     "dead",
	RunTimedOut: "timed_out",
	RunWon:      "won",
}

func (s RunStatusID) String() string {
	if name, ok := runStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the run has ended and only a restart (or, after a
// loss, a continue) can resume ticking.
func (s RunStatusID) Terminal() bool {
	return s != RunPlaying
}

// CanContinue reports whether the run ended in a loss.
func (s RunStatusID) CanContinue() bool {
	return s == RunDead || s == RunTimedOut
}
