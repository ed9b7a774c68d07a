package mood

import "errors"

// Mood is one of the six labels the app reasons about.
type Mood string

const (
	Happy    Mood = "Happy"
	Sad      Mood = "Sad"
	Anxious  Mood = "Anxious"
	Tired    Mood = "Tired"
	Excited  Mood = "Excited"
	Stressed Mood = "Stressed"
)

var ErrInvalidMoodLabel = errors.New("invalid mood label")

// All returns the moods in their stable 0..5 ordering. Timeline indices and
// random fallbacks depend on this ordering, so it never changes.
func All() []Mood {
	return []Mood{Happy, Sad, Anxious, Tired, Excited, Stressed}
}

var accents = map[Mood]string{
	Happy:    "#f9ca24",
	Sad:      "#74b9ff",
	Anxious:  "#a29bfe",
	Tired:    "#95a5a6",
	Excited:  "#ff9f43",
	Stressed: "#ff6b6b",
}

// Accent returns the fixed chart color for a mood.
func (m Mood) Accent() string {
	if c, ok := accents[m]; ok {
		return c
	}
	return "#ff99cc"
}

// Index returns the mood's position in the stable ordering, or -1.
func (m Mood) Index() int {
	for i, v := range All() {
		if v == m {
			return i
		}
	}
	return -1
}

func (m Mood) Valid() bool {
	return m.Index() >= 0
}

func (m Mood) String() string {
	return string(m)
}

// Parse validates a raw label against the enum.
func Parse(label string) (Mood, error) {
	m := Mood(label)
	if !m.Valid() {
		return "", ErrInvalidMoodLabel
	}
	return m, nil
}
