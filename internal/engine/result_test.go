package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pddtools/internal/model"
	"pddtools/internal/scenario"
)

func testResultSpec() *ResultSpec {
	return &ResultSpec{
		TrainerID: "demo",
		Positive:  []string{"clarity", "values"},
		Negative:  []string{"fear"},
		HighMin:   25,
		MediumMin: 15,
		Tiers: [3]ResultTier{
			{Level: LevelHigh, Title: "Высокий", Summary: "s-high"},
			{Level: LevelMedium, Title: "Средний", Summary: "s-medium"},
			{Level: LevelDeveloping, Title: "Развивается", Summary: "s-dev"},
		},
		Rules: []RecommendRule{
			{Category: "fear", Threshold: 10, Text: "rec-fear"},
			{Category: "clarity", Threshold: 10, Below: true, Text: "rec-clarity"},
		},
		Insights: []CategoryInsight{
			{Category: "clarity", Label: "Ясность"},
			{Category: "fear", Label: "Страх"},
		},
		Closing:     "closing",
		NextActions: []string{"act-1", "act-2"},
	}
}

func sessionWithScores(scores map[string]float64) model.Session {
	return model.Session{
		ID:      "s-1",
		Scores:  scores,
		Answers: map[string]model.Answer{},
	}
}

func TestCalculateTotalAndTiers(t *testing.T) {
	spec := testResultSpec()

	tests := []struct {
		name      string
		scores    map[string]float64
		wantTotal float64
		wantLevel string
	}{
		{"high band", map[string]float64{"clarity": 18, "values": 12, "fear": 4}, 26, LevelHigh},
		{"exact high boundary", map[string]float64{"clarity": 15, "values": 10, "fear": 0}, 25, LevelHigh},
		{"medium band", map[string]float64{"clarity": 12, "values": 8, "fear": 4}, 16, LevelMedium},
		{"exact medium boundary", map[string]float64{"clarity": 10, "values": 5, "fear": 0}, 15, LevelMedium},
		{"developing band", map[string]float64{"clarity": 5, "values": 4, "fear": 2}, 7, LevelDeveloping},
		{"negative total", map[string]float64{"clarity": 2, "fear": 9}, -7, LevelDeveloping},
		{"empty scores", map[string]float64{}, 0, LevelDeveloping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate(spec, sessionWithScores(tt.scores))
			assert.Equal(t, tt.wantTotal, res.Scores["total"])
			assert.Equal(t, tt.wantLevel, res.Level)
		})
	}
}

func TestCalculateFromAnsweredSession(t *testing.T) {
	sc := &model.Scenario{
		ID: "demo",
		Steps: []model.Step{
			{
				ID:   "q1",
				Kind: model.StepSingleChoice,
				Options: []model.Option{
					{ID: "a", Score: score(5), ScoreCategory: "clarity"},
				},
			},
			{ID: "q2", Kind: model.StepScale, ScoreCategory: "clarity"},
		},
	}

	s := NewSession("user-1", sc)
	s = Advance(sc, s, "q1", model.AnswerValue{Choice: "a"})
	s = Advance(sc, s, "q2", model.AnswerValue{Number: 7})

	res := Calculate(testResultSpec(), s)
	assert.Equal(t, 12.0, res.Scores["clarity"])
	assert.Equal(t, 12.0, res.Scores["total"])
	assert.Equal(t, LevelDeveloping, res.Level)
}

func TestCalculateRecommendations(t *testing.T) {
	spec := testResultSpec()

	res := Calculate(spec, sessionWithScores(map[string]float64{"clarity": 4, "fear": 11}))
	assert.Equal(t, []string{"rec-fear", "rec-clarity", "closing"}, res.Recommendations)

	// rules do not fire on the exact threshold
	res = Calculate(spec, sessionWithScores(map[string]float64{"clarity": 10, "fear": 10}))
	assert.Equal(t, []string{"closing"}, res.Recommendations)
}

func TestCalculateInsightsAndActions(t *testing.T) {
	spec := testResultSpec()
	res := Calculate(spec, sessionWithScores(map[string]float64{"clarity": 12, "fear": 3}))

	require.Len(t, res.Insights, 2)
	assert.Equal(t, "Ясность: 12 баллов", res.Insights[0])
	assert.Equal(t, "Страх: 3 баллов", res.Insights[1])
	assert.Equal(t, []string{"act-1", "act-2"}, res.NextActions)
}

func TestCalculateCopiesScores(t *testing.T) {
	spec := testResultSpec()
	scores := map[string]float64{"clarity": 12, "values": 8, "fear": 1}
	s := sessionWithScores(scores)

	res := Calculate(spec, s)
	scores["clarity"] = 99

	assert.Equal(t, 12.0, res.Scores["clarity"])
	assert.Equal(t, 19.0, res.Scores["total"])
}

func TestResultSpecFor(t *testing.T) {
	for _, id := range []string{
		scenario.ConsciousChoice,
		scenario.EmotionsInAction,
		scenario.AntiProcrastination,
		scenario.SelfEsteem,
		scenario.MoneyAnxiety,
	} {
		spec := ResultSpecFor(id)
		require.NotNil(t, spec, "trainer %s", id)
		assert.Equal(t, id, spec.TrainerID)
		assert.Greater(t, spec.HighMin, spec.MediumMin)
		assert.NotEmpty(t, spec.Tiers[0].Title)
		assert.NotEmpty(t, spec.Tiers[1].Title)
		assert.NotEmpty(t, spec.Tiers[2].Title)
	}
	assert.Nil(t, ResultSpecFor("unknown-trainer"))
}
