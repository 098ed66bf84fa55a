package model

// PracticeSession records one progression a training pass was started with.
type PracticeSession struct {
	Id        string
	StartedAt string // RFC3339
	Root      string
	Scale     string
	Chords    []string
	Bpm       int
}
