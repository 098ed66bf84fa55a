package theory

import "github.com/johnmpetty/progress/model"

// Notes lists the 12 pitch classes. Slots with two entries are enharmonic
// pairs with the sharp spelling first. Index arithmetic modulo 12 over this
// table is the sole transposition mechanism.
var Notes = [][]model.Note{
	{"A"},
	{"A♯", "B♭"},
	{"B"},
	{"C"},
	{"C♯", "D♭"},
	{"D"},
	{"D♯", "E♭"},
	{"E"},
	{"F"},
	{"F♯", "G♭"},
	{"G"},
	{"G♯", "A♭"},
}

// The two scales we support.
var Scales = []model.Scale{model.ScaleMinor, model.ScaleMajor}

// ScaleChords holds the seven scale-degree chords of each scale, degree one
// first so a root-anchored progression can seed from index 0.
var ScaleChords = map[model.Scale][]model.Roman{
	model.ScaleMajor: {"I", "ii", "iii", "IV", "V", "vi", "vii°"},
	model.ScaleMinor: {"i", "ii°", "III", "iv", "v", "VI", "VII"},
}

// ChordFollowing defines which chords can follow others when walking out a
// progression.
var ChordFollowing = map[model.Roman][]model.Roman{
	"I":    {"ii", "iii", "IV", "V", "vi", "vii°"},
	"i":    {"ii°", "III", "iv", "v", "VI", "VII"},
	"ii":   {"IV", "V", "vii°"},
	"ii°":  {"i", "v"},
	"III":  {"iv", "VI"},
	"iii":  {"ii", "IV", "vi"},
	"IV":   {"I", "iii", "V", "vii°"},
	"iv":   {"i", "ii°", "v"},
	"V":    {"I"},
	"v":    {"i", "VI"},
	"vi":   {"ii", "IV", "V", "I"},
	"VI":   {"ii°", "iv"},
	"VII":  {"iii"},
	"vii°": {"I", "iii"},
}

// RomanToOffset maps a scale degree to its distance from the root in
// semitones.
var RomanToOffset = map[model.Roman]int{
	"I":    0,
	"i":    0,
	"ii":   2,
	"ii°":  2,
	"III":  4,
	"iii":  3,
	"IV":   5,
	"iv":   5,
	"V":    7,
	"v":    7,
	"vi":   9,
	"VI":   9,
	"VII":  11,
	"vii°": 10,
}

// CommonProgressions are drawn whole when not generating dynamically.
var CommonProgressions = map[model.Scale][][]model.Roman{
	model.ScaleMajor: {
		{"I", "IV", "V"},
		{"ii", "V", "I"},
		{"I", "ii", "IV"},
		{"I", "IV", "I", "V"},
		{"I", "IV", "V", "IV"},
		{"I", "V", "vi", "IV"},
		{"I", "ii", "IV", "V"},
		{"I", "vi", "ii", "V"},
	},
	model.ScaleMinor: {
		{"i", "iv", "v"},
		{"i", "VI", "VII"},
		{"ii", "v", "i"},
		{"i", "iv", "VII"},
		{"i", "iv", "i", "v"},
		{"i", "iv", "v", "iv"},
		{"i", "VI", "III", "VII"},
	},
}
