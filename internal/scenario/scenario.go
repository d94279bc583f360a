// Package scenario holds the static trainer scenario definitions.
// The step content is product copy; the flows are defined once at
// startup and shared read-only across all sessions.
package scenario

import "pddtools/internal/model"

// Trainer IDs
const (
	ConsciousChoice     = "conscious-choice"
	EmotionsInAction    = "emotions-in-action"
	AntiProcrastination = "anti-procrastination"
	SelfEsteem          = "self-esteem"
	MoneyAnxiety        = "money-anxiety"
)

var registry = map[string]*model.Scenario{
	ConsciousChoice:     consciousChoiceScenario,
	EmotionsInAction:    emotionsScenario,
	AntiProcrastination: antiProcrastinationScenario,
	SelfEsteem:          selfEsteemScenario,
	MoneyAnxiety:        moneyAnxietyScenario,
}

// Get returns the scenario for a trainer ID, or nil if unknown.
func Get(trainerID string) *model.Scenario {
	return registry[trainerID]
}

// IDs lists all registered trainer IDs in catalog order.
func IDs() []string {
	return []string{
		ConsciousChoice,
		EmotionsInAction,
		AntiProcrastination,
		SelfEsteem,
		MoneyAnxiety,
	}
}

// pts is a literal helper for optional option scores.
func pts(v float64) *float64 {
	return &v
}
