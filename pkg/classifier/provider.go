package classifier

import (
	"context"
	"fmt"

	"moodmate-be/pkg/mood"
)

// Provider classifies raw image bytes into one label of the detector's own
// taxonomy: Angry, Disgust, Fear, Happy, Sad, Surprise, Neutral.
type Provider interface {
	Detect(ctx context.Context, image []byte) (string, error)
}

// labelMap reconciles the detector taxonomy with the app mood enum. Neutral
// has no counterpart and is deliberately left unmapped; callers fall back to
// a random mood for it, same as for a failed detection.
var labelMap = map[string]mood.Mood{
	"Angry":    mood.Stressed,
	"Disgust":  mood.Sad,
	"Fear":     mood.Anxious,
	"Happy":    mood.Happy,
	"Sad":      mood.Sad,
	"Surprise": mood.Excited,
}

// MapLabel translates a detector label into the app enum.
func MapLabel(label string) (mood.Mood, error) {
	if m, ok := labelMap[label]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unmapped classifier label: %q", label)
}
