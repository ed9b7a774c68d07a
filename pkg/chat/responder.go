package chat

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"moodmate-be/pkg/llm"
	"moodmate-be/pkg/session"
)

const (
	systemPreamble = "You are MoodMate, an empathetic helper. Use history and mood to respond naturally."

	// Transcript lookback handed to the remote model.
	historyLookback = 8
)

// Responder produces assistant replies. It has exactly two modes: delegated
// (remote model) and templated (local composition). Any remote failure means
// a silent switch to templated — never a user-visible error.
type Responder struct {
	provider llm.LLMProvider // nil means templated-only
	rng      *rand.Rand
}

func NewResponder(provider llm.LLMProvider, rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{provider: provider, rng: rng}
}

// Reply answers the user's input given the session context. The returned
// bool reports whether the reply was delegated to the remote model.
func (r *Responder) Reply(ctx context.Context, state *session.State, input string) (string, bool) {
	if r.provider != nil {
		if reply, err := r.delegate(ctx, state, input); err == nil && reply != "" {
			return reply, true
		}
	}
	return r.compose(state, input), false
}

func (r *Responder) delegate(ctx context.Context, state *session.State, input string) (string, error) {
	history := []llm.Message{{Role: "system", Content: systemPreamble}}
	for _, msg := range state.RecentMessages(historyLookback) {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	history = append(history, llm.Message{Role: "user", Content: input})

	return r.provider.Chat(ctx, history, llm.WithTemperature(0.8))
}

var suggestionPrompts = []string{
	"Would you like a short breathing exercise?",
	"Shall I suggest a mood-matching playlist?",
	"Would you like to jot a quick journal entry about this?",
	"Do you want a simple coping strategy right now?",
}

var reflections = []string{
	"It's okay to feel this way — you're doing your best.",
	"Small steps count. You're not alone.",
	"Thanks for being open; that takes courage.",
}

var followups = []string{
	"Do you want tips now, or would you prefer to talk more?",
	"On a scale of 1–10, how intense is this feeling?",
	"Was there anything that triggered this feeling today?",
}

// compose builds the templated reply. Fixed line order, each line drawn at
// random from a small pool; every opener echoes the input verbatim so the
// echo is guaranteed regardless of the pick.
func (r *Responder) compose(state *session.State, input string) string {
	name := state.DisplayName
	if name == "" {
		name = "friend"
	}

	openers := []string{
		fmt.Sprintf("Thanks for sharing, %s. I hear you — \"%s\".", name, input),
		fmt.Sprintf("Got it, %s. I appreciate you saying that: \"%s\".", name, input),
		fmt.Sprintf("Thanks for telling me that, %s — \"%s\". I'm here with you.", name, input),
	}

	parts := []string{r.choose(openers)}

	if excerpt := state.LastJournalExcerpt(); excerpt != "" {
		parts = append(parts, fmt.Sprintf("I remember you wrote: \"%s\" — that matters.", excerpt))
	}

	if moods := state.RecentMoods(6); len(moods) > 0 {
		labels := make([]string, len(moods))
		for i, m := range moods {
			labels[i] = m.String()
		}
		parts = append(parts, fmt.Sprintf("I see you've felt %s recently; that's useful context.", strings.Join(labels, ", ")))
	}

	parts = append(parts,
		r.choose(suggestionPrompts),
		r.choose(reflections),
		r.choose(followups),
	)

	return strings.Join(parts, "\n\n")
}

func (r *Responder) choose(options []string) string {
	return options[r.rng.Intn(len(options))]
}
