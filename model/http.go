package model

type ProgressionResponse struct {
	Id                 string   `json:"id"`
	Root               string   `json:"root"`
	Scale              string   `json:"scale"`
	Chords             []string `json:"chords"`
	Bpm                int      `json:"bpm"`
	CurrentChord       string   `json:"current_chord"`
	NextChord          string   `json:"next_chord"`
	QuarterNoteSeconds float64  `json:"quarter_note_seconds"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
