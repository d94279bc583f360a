package model

// BarrierStep is one attempted step in a barrier session: a 1-based
// index, a short description, progress x (1-10), and tension y (0-10).
type BarrierStep struct {
	Index int     `json:"index" bson:"index"`
	Text  string  `json:"text" bson:"text"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
}

// BarrierPhase is the barrier bot conversation phase
type BarrierPhase string

const (
	PhaseWelcome            BarrierPhase = "welcome"
	PhaseContext            BarrierPhase = "context"
	PhaseStrength           BarrierPhase = "strength"
	PhaseWeakness           BarrierPhase = "weakness"
	PhaseStepsIntro         BarrierPhase = "steps_intro"
	PhaseStepText           BarrierPhase = "step_text"
	PhaseStepX              BarrierPhase = "step_x"
	PhaseStepY              BarrierPhase = "step_y"
	PhaseStepMore           BarrierPhase = "step_more"
	PhaseBreakPoint         BarrierPhase = "break_point"
	PhaseBreakManual        BarrierPhase = "break_manual"
	PhaseInsight            BarrierPhase = "insight"
	PhaseAdditionalStrength BarrierPhase = "additional_strength"
	PhaseRecalc             BarrierPhase = "recalc"
	PhaseResult             BarrierPhase = "result"
	PhaseDone               BarrierPhase = "done"
)

// BarrierState is the full state of one barrier bot session.
// BreakStep is an index into Steps, or -1 while undetermined.
type BarrierState struct {
	Phase               BarrierPhase  `json:"phase" bson:"phase"`
	SelectedContext     string        `json:"selectedContext" bson:"selectedContext"`
	MainStrengths       []string      `json:"mainStrength" bson:"mainStrength"`
	MainWeakness        string        `json:"mainWeakness" bson:"mainWeakness"`
	Steps               []BarrierStep `json:"steps" bson:"steps"`
	CurrentStepIndex    int           `json:"currentStepIndex" bson:"currentStepIndex"`
	BreakStep           int           `json:"breakStep" bson:"breakStep"`
	AdditionalStrengths []string      `json:"additionalStrength" bson:"additionalStrength"`
	Profile             string        `json:"psychProfile" bson:"psychProfile"`
}

// ProfileText is the fixed copy shown for one psychological profile
type ProfileText struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"desc" bson:"desc"`
}
