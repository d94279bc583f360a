package model

import "time"

// Result is the immutable outcome of a completed session. Scores is a
// snapshot copied from the session at calculation time, never a
// reference into it.
type Result struct {
	Title           string             `json:"title" bson:"title"`
	Summary         string             `json:"summary" bson:"summary"`
	Level           string             `json:"level,omitempty" bson:"level,omitempty"`
	Scores          map[string]float64 `json:"scores" bson:"scores"`
	Recommendations []string           `json:"recommendations" bson:"recommendations"`
	Insights        []string           `json:"insights" bson:"insights"`
	NextActions     []string           `json:"nextActions,omitempty" bson:"nextActions,omitempty"`
}

// Trend describes session-over-session movement of the total score
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// TrainerStats summarizes a user's history with one trainer
type TrainerStats struct {
	TrainerID         string             `json:"trainerId" bson:"trainerId"`
	TotalSessions     int                `json:"totalSessions" bson:"totalSessions"`
	CompletedSessions int                `json:"completedSessions" bson:"completedSessions"`
	LastSessionDate   *time.Time         `json:"lastSessionDate,omitempty" bson:"lastSessionDate,omitempty"`
	LastScores        map[string]float64 `json:"lastScores" bson:"lastScores"`
	Trend             Trend              `json:"trend" bson:"trend"`
}
