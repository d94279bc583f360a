package engine

import (
	"fmt"

	"pddtools/internal/model"
)

// Result levels, ordered from strongest to weakest.
const (
	LevelHigh       = "high"
	LevelMedium     = "medium"
	LevelDeveloping = "developing"
)

// ResultTier is the fixed copy shown for one score band.
type ResultTier struct {
	Level   string
	Title   string
	Summary string
}

// RecommendRule adds its text when a category crosses a threshold.
// By default the rule fires on score > Threshold; with Below set it
// fires on score < Threshold.
type RecommendRule struct {
	Category  string
	Threshold float64
	Below     bool
	Text      string
}

// CategoryInsight renders one line of the result's insight block.
type CategoryInsight struct {
	Category string
	Label    string
}

// ResultSpec is a declarative result calculator for one trainer
// family. The total is the sum of Positive categories minus the sum
// of Negative ones, banded into three tiers.
type ResultSpec struct {
	TrainerID   string
	Positive    []string
	Negative    []string
	HighMin     float64
	MediumMin   float64
	Tiers       [3]ResultTier
	Rules       []RecommendRule
	Insights    []CategoryInsight
	Closing     string
	NextActions []string
}

// Calculate builds the final result for a finished session. Session
// scores are copied into the result, never aliased, so the result
// stays stable if the session keeps changing.
func Calculate(spec *ResultSpec, session model.Session) *model.Result {
	scores := make(map[string]float64, len(spec.Positive)+len(spec.Negative)+1)
	var total float64
	for _, cat := range spec.Positive {
		v := session.Scores[cat]
		scores[cat] = v
		total += v
	}
	for _, cat := range spec.Negative {
		v := session.Scores[cat]
		scores[cat] = v
		total -= v
	}
	scores["total"] = total

	tier := spec.Tiers[2]
	switch {
	case total >= spec.HighMin:
		tier = spec.Tiers[0]
	case total >= spec.MediumMin:
		tier = spec.Tiers[1]
	}

	var recs []string
	for _, rule := range spec.Rules {
		v := session.Scores[rule.Category]
		if (rule.Below && v < rule.Threshold) || (!rule.Below && v > rule.Threshold) {
			recs = append(recs, rule.Text)
		}
	}
	if spec.Closing != "" {
		recs = append(recs, spec.Closing)
	}

	insights := make([]string, 0, len(spec.Insights))
	for _, ins := range spec.Insights {
		insights = append(insights, fmt.Sprintf("%s: %.0f баллов", ins.Label, session.Scores[ins.Category]))
	}

	return &model.Result{
		Title:           tier.Title,
		Summary:         tier.Summary,
		Level:           tier.Level,
		Scores:          scores,
		Recommendations: recs,
		Insights:        insights,
		NextActions:     append([]string(nil), spec.NextActions...),
	}
}
