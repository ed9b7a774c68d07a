package suggest

import (
	"context"
	"math/rand"
	"time"

	"moodmate-be/pkg/mood"
	"moodmate-be/pkg/music"
)

// Suggestion is the content bundle for one mood. Food, exercise and tip are
// re-rolled on every call, so repeated requests for the same mood vary.
type Suggestion struct {
	Mood     mood.Mood    `json:"mood"`
	Accent   string       `json:"accent"`
	Quote    string       `json:"quote"`
	Food     string       `json:"food"`
	Exercise string       `json:"exercise"`
	Tip      string       `json:"tip"`
	Music    music.Bundle `json:"music"`
}

// Engine maps a mood to its content bundle. The random source is injected so
// tests can seed it; the music provider may be nil, in which case the static
// fallback table is used directly.
type Engine struct {
	provider music.Provider
	rng      *rand.Rand
}

func NewEngine(provider music.Provider, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{provider: provider, rng: rng}
}

// ChooseOne picks uniformly at random from the options.
func (e *Engine) ChooseOne(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[e.rng.Intn(len(options))]
}

// RandomMood picks a uniform random label from the app enum. Used as the
// fallback when the image classifier is unavailable or fails.
func (e *Engine) RandomMood() mood.Mood {
	all := mood.All()
	return all[e.rng.Intn(len(all))]
}

// Suggestions builds the full bundle for a mood, including the resolved
// music bundle.
func (e *Engine) Suggestions(ctx context.Context, m mood.Mood) Suggestion {
	return Suggestion{
		Mood:     m,
		Accent:   m.Accent(),
		Quote:    quotes[m],
		Food:     e.ChooseOne(foodOptions[m]),
		Exercise: e.ChooseOne(exerciseOptions[m]),
		Tip:      e.ChooseOne(tips),
		Music:    e.MusicBundle(ctx, m),
	}
}

// MusicBundle resolves music for a mood: catalog lookup first, static
// fallback on error or empty result. Collaborator failures never propagate.
func (e *Engine) MusicBundle(ctx context.Context, m mood.Mood) music.Bundle {
	if e.provider == nil {
		return fallbackBundles[m]
	}
	result, err := e.provider.Search(ctx, m.String())
	if err != nil {
		return fallbackBundles[m]
	}
	bundle := result.Normalize()
	if bundle.Empty() {
		return fallbackBundles[m]
	}
	return bundle
}
