package dto

type RecordMoodRequest struct {
	Mood    string `json:"mood" validate:"required"`
	Persist bool   `json:"persist"`
}

type RecordMoodResponse struct {
	Mood     string `json:"mood"`
	Appended bool   `json:"appended"`
	Warning  string `json:"warning,omitempty"`
}

type DetectMoodResponse struct {
	Mood Mood `json:"mood"`
	// Detected is the classifier's raw label, empty when the detection
	// failed and a random mood was substituted.
	Detected string `json:"detected,omitempty"`
	Fallback bool   `json:"fallback"`
	Warning  string `json:"warning,omitempty"`
}

// Mood mirrors the enum label plus its accent for chart rendering.
type Mood struct {
	Label  string `json:"label"`
	Index  int    `json:"index"`
	Accent string `json:"accent"`
}
