package barrier

import "pddtools/internal/model"

// Psychological profiles detected from the step curve.
const (
	ProfileAmbitiousAnxious = "ambitious_anxious"
	ProfileLowBelief        = "low_belief"
	ProfileFearOfEvaluation = "fear_of_evaluation"
	ProfileChronicAnxiety   = "chronic_anxiety"
	ProfileBalanced         = "balanced"
)

// DetectBreakPoint finds the index of the step where the attempt
// broke: the first step with anxiety y >= 7, otherwise the first step
// where belief x dropped below half of the previous step's. Returns
// -1 when no break is visible.
func DetectBreakPoint(steps []model.BarrierStep) int {
	for i, s := range steps {
		if s.Y >= 7 {
			return i
		}
	}
	for i := 1; i < len(steps); i++ {
		if steps[i].X < steps[i-1].X*0.5 {
			return i
		}
	}
	return -1
}

// DetectProfile classifies the step curve into one of the known
// profiles. The checks are ordered by priority; the first match wins.
// An empty curve yields "".
func DetectProfile(steps []model.BarrierStep) string {
	if len(steps) == 0 {
		return ""
	}

	var sumX, sumY float64
	minY, maxY := steps[0].Y, steps[0].Y
	for _, s := range steps {
		sumX += s.X
		sumY += s.Y
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	avgX := sumX / float64(len(steps))
	avgY := sumY / float64(len(steps))
	ySpread := maxY - minY

	switch {
	case avgX >= 7 && avgY >= 7:
		return ProfileAmbitiousAnxious
	case avgX <= 4:
		return ProfileLowBelief
	case ySpread >= 5:
		return ProfileFearOfEvaluation
	case avgY >= 5 && ySpread <= 3:
		return ProfileChronicAnxiety
	default:
		return ProfileBalanced
	}
}

// Anxiety reduction applied per weakness when exactly one additional
// strength was named. Weaknesses not in the table reduce by 2.
var weaknessReduction = map[string]float64{
	"Страх ошибки":         2,
	"Страх осуждения":      2,
	"Страх нестабильности": 2,
	"Синдром самозванца":   2,
	"Страх отказа":         2,
	"Страх критики":        2,
	"Быстрое выгорание":    1,
}

// RecalcY projects the anxiety of the break step after the user has
// named additional strengths. Two or more strengths give a flat
// reduction of 3; one strength reduces by the weakness's class; none
// changes nothing. The result never goes below zero.
func RecalcY(originalY float64, weakness string, additionalCount int) float64 {
	var reduction float64
	switch {
	case additionalCount >= 2:
		reduction = 3
	case additionalCount == 1:
		reduction = 2
		if r, ok := weaknessReduction[weakness]; ok {
			reduction = r
		}
	}

	if out := originalY - reduction; out > 0 {
		return out
	}
	return 0
}
