package session

import "time"

// TimelinePoint drives the mood scatter/line chart: one point per log entry,
// insertion order preserved.
type TimelinePoint struct {
	Timestamp time.Time `json:"timestamp"`
	MoodIndex int       `json:"mood_index"`
	Mood      string    `json:"mood"`
	Color     string    `json:"color"`
}

// Timeline derives the chart view from the mood log. No aggregation and no
// reordering happens here.
func (s *State) Timeline() []TimelinePoint {
	points := make([]TimelinePoint, 0, len(s.MoodLog))
	for _, e := range s.MoodLog {
		points = append(points, TimelinePoint{
			Timestamp: e.Timestamp,
			MoodIndex: e.Mood.Index(),
			Mood:      e.Mood.String(),
			Color:     e.Mood.Accent(),
		})
	}
	return points
}
