package model

// DiaryEntry is one structured journaling record
type DiaryEntry struct {
	Date              string   `json:"date" bson:"date"`
	Situation         string   `json:"situation" bson:"situation"`
	Thoughts          string   `json:"thoughts" bson:"thoughts"`
	Emotions          string   `json:"emotions" bson:"emotions"`
	Body              string   `json:"body" bson:"body"`
	Action            string   `json:"action" bson:"action"`
	EmotionTags       []string `json:"emotion_tags" bson:"emotion_tags"`
	PatternTags       []string `json:"pattern_tags" bson:"pattern_tags"`
	IntensityScore    int      `json:"intensity_score" bson:"intensity_score"`
	ReflectionAnswers []string `json:"reflectionAnswers,omitempty" bson:"reflectionAnswers,omitempty"`
	SupportText       string   `json:"supportText,omitempty" bson:"supportText,omitempty"`
}

// MetricDef names one tracked progress metric
type MetricDef struct {
	Key   string `json:"key" bson:"key"`
	Label string `json:"label" bson:"label"`
}

// ProgressEntry is one progress check-in: metric values on a 1-10
// scale plus the user's current focus and key thought.
type ProgressEntry struct {
	Date       string             `json:"date" bson:"date"`
	Values     map[string]float64 `json:"values" bson:"values"`
	MainFocus  string             `json:"main_focus" bson:"main_focus"`
	KeyThought string             `json:"key_thought" bson:"key_thought"`
	ServerID   string             `json:"_server_id,omitempty" bson:"serverId,omitempty"`
}
