package entity

import (
	"time"
)

// Journal is a persisted journal row. Entry holds the body text verbatim;
// Emotion tags the row with a mood label when one was given. Rows are
// append-only: there is no edit or delete path.
type Journal struct {
	Id        uint
	UserId    uint
	Timestamp time.Time
	Emotion   string
	Title     *string
	Entry     string
}
