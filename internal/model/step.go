package model

// StepKind defines the interaction type of a scenario step
type StepKind string

const (
	StepIntro          StepKind = "intro"
	StepSingleChoice   StepKind = "single-choice"
	StepMultipleChoice StepKind = "multiple-choice"
	StepScale          StepKind = "scale"
	StepTextInput      StepKind = "text-input"
	StepInfo           StepKind = "info"
	StepConfirm        StepKind = "confirm"
	StepTimer          StepKind = "timer"
	StepResult         StepKind = "result"
)

// ScaleLabels annotate the ends of a scale step
type ScaleLabels struct {
	Min string `json:"min" bson:"min"`
	Max string `json:"max" bson:"max"`
}

// Option is one selectable answer within a choice step.
// Score is optional: a nil score contributes nothing, a present score
// (positive or negative) is added to the option's category.
type Option struct {
	ID            string   `json:"id" bson:"id"`
	Label         string   `json:"label" bson:"label"`
	Score         *float64 `json:"score,omitempty" bson:"score,omitempty"`
	ScoreCategory string   `json:"scoreCategory,omitempty" bson:"scoreCategory,omitempty"`
	NextStep      string   `json:"nextStep,omitempty" bson:"nextStep,omitempty"`
	Tags          []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// Step is one prompt/interaction unit within a scenario.
// Defined once at build time and shared read-only across sessions.
type Step struct {
	ID            string       `json:"id" bson:"id"`
	Kind          StepKind     `json:"type" bson:"type"`
	Title         string       `json:"title" bson:"title"`
	Description   string       `json:"description,omitempty" bson:"description,omitempty"`
	Options       []Option     `json:"options,omitempty" bson:"options,omitempty"`
	ScaleMin      int          `json:"scaleMin,omitempty" bson:"scaleMin,omitempty"`
	ScaleMax      int          `json:"scaleMax,omitempty" bson:"scaleMax,omitempty"`
	ScaleLabels   *ScaleLabels `json:"scaleLabels,omitempty" bson:"scaleLabels,omitempty"`
	Placeholder   string       `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
	TimerSeconds  int          `json:"timerSeconds,omitempty" bson:"timerSeconds,omitempty"`
	NextStep      string       `json:"nextStep,omitempty" bson:"nextStep,omitempty"`
	ConfirmYes    string       `json:"confirmYes,omitempty" bson:"confirmYes,omitempty"`
	ConfirmNo     string       `json:"confirmNo,omitempty" bson:"confirmNo,omitempty"`
	ScoreCategory string       `json:"scoreCategory,omitempty" bson:"scoreCategory,omitempty"`
	Dynamic       bool         `json:"dynamic,omitempty" bson:"dynamic,omitempty"`
}

// Option returns the option with the given ID, or nil.
func (s *Step) Option(id string) *Option {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}

// StepResolver substitutes a dynamic step (usually its option list)
// based on answers collected earlier in the session.
type StepResolver func(session *Session, step Step) Step

// Scenario is a named, ordered, static definition of steps for one
// assessment flow. Resolvers, when present, are keyed by step ID and
// rebuild dynamic steps from the session's earlier answers.
type Scenario struct {
	ID        string                  `json:"id" bson:"id"`
	Steps     []Step                  `json:"steps" bson:"steps"`
	Resolvers map[string]StepResolver `json:"-" bson:"-"`
}

// StepByID returns the step with the given ID, or nil.
func (sc *Scenario) StepByID(id string) *Step {
	for i := range sc.Steps {
		if sc.Steps[i].ID == id {
			return &sc.Steps[i]
		}
	}
	return nil
}

// StepIndex returns the position of the step with the given ID, or -1.
func (sc *Scenario) StepIndex(id string) int {
	for i := range sc.Steps {
		if sc.Steps[i].ID == id {
			return i
		}
	}
	return -1
}
