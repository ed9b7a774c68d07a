package suggest

import (
	"moodmate-be/pkg/mood"
	"moodmate-be/pkg/music"
)

var quotes = map[mood.Mood]string{
	mood.Happy:    "Happiness is a direction, not a place. 🌈",
	mood.Sad:      "This too shall pass. You’re not alone. 🌧️",
	mood.Anxious:  "Take a breath. You’re doing your best. 🌿",
	mood.Tired:    "Rest is productive. Take a break. 🌙",
	mood.Excited:  "Your energy lights up rooms. Use it kindly. ⚡",
	mood.Stressed: "Small steps forward are still progress. 🌻",
}

var foodOptions = map[mood.Mood][]string{
	mood.Happy:    {"Smoothie bowl", "Avocado toast", "Fresh fruit salad"},
	mood.Sad:      {"Dark chocolate", "Warm soup", "Mashed potatoes"},
	mood.Anxious:  {"Chamomile tea", "Oats with honey", "Banana"},
	mood.Tired:    {"Greek yogurt with berries", "Almonds", "Green tea"},
	mood.Excited:  {"Protein bar", "Granola mix", "Fruit smoothie"},
	mood.Stressed: {"Salmon", "Spinach salad", "Herbal tea"},
}

var exerciseOptions = map[mood.Mood][]string{
	mood.Happy:    {"Dancing", "Cycling", "Running"},
	mood.Sad:      {"Gentle yoga", "Walking", "Stretching"},
	mood.Anxious:  {"Deep breathing", "Meditation", "Light jog"},
	mood.Tired:    {"Gentle yoga", "Short walk", "Stretching"},
	mood.Excited:  {"HIIT", "Zumba", "Jump rope"},
	mood.Stressed: {"Meditation", "Nature walk", "Deep breathing"},
}

var tips = []string{
	"Drink a glass of water",
	"Take a 5-minute walk",
	"Write one thing you’re grateful for",
	"Try 4-4-6 breathing",
}

// fallbackBundles is the static music table used when the catalog lookup
// errors out or comes back empty.
var fallbackBundles = map[mood.Mood]music.Bundle{
	mood.Happy: {
		Songs: []string{
			"https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6",
			"https://open.spotify.com/track/7GhIk7Il098yCjg4BQjzvb",
		},
		Playlists: []string{"https://open.spotify.com/playlist/37i9dQZF1DXdPec7aLTmlC"},
	},
	mood.Sad: {
		Songs: []string{
			"https://open.spotify.com/track/1cTZMwcBJT0Ka3UJPXOeeN",
			"https://open.spotify.com/track/3pD0f7hSJg2XdQ6udw5Tey",
		},
		Playlists: []string{"https://open.spotify.com/playlist/37i9dQZF1DWVV27DiNWxkR"},
	},
	mood.Anxious: {
		Songs:     []string{"https://open.spotify.com/track/4VqPOruhp5EdPBeR92t6lQ"},
		Playlists: []string{"https://open.spotify.com/playlist/37i9dQZF1DX3rxVfibe1L0"},
	},
	mood.Tired: {
		Songs:     []string{"https://open.spotify.com/track/2takcwOaAZWiXQijPHIx7B"},
		Playlists: []string{"https://open.spotify.com/playlist/37i9dQZF1DWXRqgorJj26U"},
	},
	mood.Excited: {
		Songs:     []string{"https://open.spotify.com/track/1lCRw5FEZ1gPDNPzy1K4zW"},
		Playlists: []string{"https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M"},
	},
	mood.Stressed: {
		Songs:     []string{"https://open.spotify.com/track/6RRNNciQGZEXnqk8SQ9yv5"},
		Playlists: []string{"https://open.spotify.com/playlist/37i9dQZF1DX3Ogo9pFvBkY"},
	},
}

// FallbackBundle exposes the static table, mainly for tests and the engine.
func FallbackBundle(m mood.Mood) music.Bundle {
	return fallbackBundles[m]
}

// FoodOptions and ExerciseOptions expose the pools so tests can assert
// membership instead of exact picks.
func FoodOptions(m mood.Mood) []string     { return foodOptions[m] }
func ExerciseOptions(m mood.Mood) []string { return exerciseOptions[m] }
func Tips() []string                       { return tips }
