package music

import "context"

// Track is the flat record shape some catalog responses use.
type Track struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

// Bundle is the single internal shape everything downstream consumes:
// plain lists of song and playlist URLs.
type Bundle struct {
	Songs     []string `json:"songs"`
	Playlists []string `json:"playlists"`
}

func (b Bundle) Empty() bool {
	return len(b.Songs) == 0 && len(b.Playlists) == 0
}

// Result is the tagged union of the two collaborator response shapes. A
// provider fills exactly one of the fields; Normalize resolves it at the
// boundary so shape mismatches can never surface further in.
type Result struct {
	Tracks []Track // flat track-record list
	Bundle *Bundle // already split into songs/playlists
}

// Normalize flattens either shape into a Bundle. It never fails: a nil or
// empty result normalizes to an empty bundle, which callers treat as a miss.
func (r *Result) Normalize() Bundle {
	if r == nil {
		return Bundle{}
	}
	if r.Bundle != nil {
		return *r.Bundle
	}
	out := Bundle{}
	for _, t := range r.Tracks {
		if t.URL != "" {
			out.Songs = append(out.Songs, t.URL)
		}
	}
	return out
}

// Provider searches an external music catalog by mood keyword.
type Provider interface {
	Search(ctx context.Context, keyword string) (*Result, error)
}
