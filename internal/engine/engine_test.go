package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pddtools/internal/model"
)

func score(v float64) *float64 { return &v }

func branchScenario() *model.Scenario {
	return &model.Scenario{
		ID: "branch-demo",
		Steps: []model.Step{
			{
				ID:   "pick",
				Kind: model.StepSingleChoice,
				Options: []model.Option{
					{ID: "a", Score: score(5), ScoreCategory: "clarity", NextStep: "final"},
					{ID: "b", Score: score(3)},
					{ID: "c", NextStep: "missing-step"},
				},
				ScoreCategory: "fallback",
			},
			{
				ID:   "check",
				Kind: model.StepConfirm,
				Options: []model.Option{
					{ID: "yes", Label: "Да"},
					{ID: "no", Label: "Нет"},
				},
				ConfirmYes: "final",
				ConfirmNo:  "rate",
			},
			{ID: "rate", Kind: model.StepScale, ScoreCategory: "fear"},
			{ID: "note", Kind: model.StepTextInput, NextStep: "pick"},
			{ID: "final", Kind: model.StepResult},
		},
	}
}

func TestNewSession(t *testing.T) {
	sc := branchScenario()
	s := NewSession("user-1", sc)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, sc.ID, s.TrainerID)
	assert.Equal(t, 0, s.CurrentStepIndex)
	assert.NotNil(t, s.Answers)
	assert.NotNil(t, s.Scores)
	assert.False(t, s.Completed())
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	sc := branchScenario()
	orig := NewSession("user-1", sc)

	next := Advance(sc, orig, "pick", model.AnswerValue{Choice: "a"})

	assert.Empty(t, orig.Answers)
	assert.Empty(t, orig.Scores)
	assert.Equal(t, 0, orig.CurrentStepIndex)

	assert.Len(t, next.Answers, 1)
	assert.Equal(t, 5.0, next.Scores["clarity"])
	assert.Equal(t, sc.StepIndex("final"), next.CurrentStepIndex)
}

func TestAdvanceUnknownStepIsNoOp(t *testing.T) {
	sc := branchScenario()
	orig := NewSession("user-1", sc)

	next := Advance(sc, orig, "does-not-exist", model.AnswerValue{Choice: "a"})

	assert.Equal(t, orig.ID, next.ID)
	assert.Empty(t, next.Answers)
	assert.Empty(t, next.Scores)
	assert.Equal(t, orig.CurrentStepIndex, next.CurrentStepIndex)
}

func TestAdvanceRepeatAnswerOverwrites(t *testing.T) {
	sc := branchScenario()
	s := NewSession("user-1", sc)

	s = Advance(sc, s, "pick", model.AnswerValue{Choice: "b"})
	s = Advance(sc, s, "pick", model.AnswerValue{Choice: "a"})

	require.Len(t, s.Answers, 1)
	assert.Equal(t, "a", s.Answers["pick"].Value.Choice)
}

func TestNextIndexBranchPriority(t *testing.T) {
	sc := branchScenario()

	tests := []struct {
		name    string
		stepID  string
		value   model.AnswerValue
		wantIdx int
	}{
		{"option nextStep wins", "pick", model.AnswerValue{Choice: "a"}, sc.StepIndex("final")},
		{"option without nextStep goes sequential", "pick", model.AnswerValue{Choice: "b"}, sc.StepIndex("check")},
		{"missing branch target falls back to sequential", "pick", model.AnswerValue{Choice: "c"}, sc.StepIndex("check")},
		{"confirm yes", "check", model.AnswerValue{Choice: "yes"}, sc.StepIndex("final")},
		{"confirm no", "check", model.AnswerValue{Choice: "no"}, sc.StepIndex("rate")},
		{"step nextStep on optionless step", "note", model.AnswerValue{Text: "ok"}, sc.StepIndex("pick")},
		{"scale goes sequential", "rate", model.AnswerValue{Number: 6}, sc.StepIndex("note")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("user-1", sc)
			s.CurrentStepIndex = sc.StepIndex(tt.stepID)
			next := Advance(sc, s, tt.stepID, tt.value)
			assert.Equal(t, tt.wantIdx, next.CurrentStepIndex)
		})
	}
}

func TestMultipleChoiceScoresAreAdditive(t *testing.T) {
	sc := &model.Scenario{
		ID: "multi-demo",
		Steps: []model.Step{
			{
				ID:   "pick-many",
				Kind: model.StepMultipleChoice,
				Options: []model.Option{
					{ID: "a", Score: score(2), ScoreCategory: "values"},
					{ID: "b", Score: score(3), ScoreCategory: "values"},
					{ID: "c", Score: score(1), ScoreCategory: "fear"},
					{ID: "d"},
				},
			},
		},
	}

	s := NewSession("user-1", sc)
	s = Advance(sc, s, "pick-many", model.AnswerValue{Choices: []string{"a", "b", "c", "d"}})

	assert.Equal(t, 5.0, s.Scores["values"])
	assert.Equal(t, 1.0, s.Scores["fear"])
}

func TestMultipleChoiceIgnoresOptionNextStep(t *testing.T) {
	sc := &model.Scenario{
		ID: "multi-branch-demo",
		Steps: []model.Step{
			{
				ID:   "pick-many",
				Kind: model.StepMultipleChoice,
				Options: []model.Option{
					{ID: "a", NextStep: "final"},
					{ID: "b"},
				},
			},
			{ID: "between", Kind: model.StepTextInput},
			{ID: "final", Kind: model.StepResult},
		},
	}

	// option branching only applies to single-choice steps
	s := NewSession("user-1", sc)
	s = Advance(sc, s, "pick-many", model.AnswerValue{Choice: "a", Choices: []string{"a", "b"}})

	assert.Equal(t, sc.StepIndex("between"), s.CurrentStepIndex)
}

func TestScoreCategoryFallback(t *testing.T) {
	sc := &model.Scenario{
		ID: "fallback-demo",
		Steps: []model.Step{
			{
				ID:            "step-cat",
				Kind:          model.StepSingleChoice,
				ScoreCategory: "step-level",
				Options:       []model.Option{{ID: "a", Score: score(4)}},
			},
			{
				ID:      "no-cat",
				Kind:    model.StepSingleChoice,
				Options: []model.Option{{ID: "a", Score: score(2)}},
			},
			{ID: "bare-scale", Kind: model.StepScale},
		},
	}

	s := NewSession("user-1", sc)
	s = Advance(sc, s, "step-cat", model.AnswerValue{Choice: "a"})
	s = Advance(sc, s, "no-cat", model.AnswerValue{Choice: "a"})
	s = Advance(sc, s, "bare-scale", model.AnswerValue{Number: 7})

	assert.Equal(t, 4.0, s.Scores["step-level"])
	assert.Equal(t, 9.0, s.Scores["general"])
}

func TestProgress(t *testing.T) {
	sc := branchScenario() // 5 steps

	tests := []struct {
		idx  int
		want int
	}{
		{0, 0},
		{1, 25},
		{2, 50},
		{3, 75},
		{4, 100},
		{9, 100},
		{-3, 0},
	}
	for _, tt := range tests {
		s := model.Session{CurrentStepIndex: tt.idx}
		assert.Equal(t, tt.want, Progress(sc, s), "index %d", tt.idx)
	}
}

func TestProgressSingleStepScenario(t *testing.T) {
	sc := &model.Scenario{ID: "one", Steps: []model.Step{{ID: "only"}}}
	assert.Equal(t, 100, Progress(sc, model.Session{}))
}

func TestCurrentStepBounds(t *testing.T) {
	sc := branchScenario()

	s := model.Session{CurrentStepIndex: len(sc.Steps)}
	assert.Nil(t, CurrentStep(sc, s))

	s.CurrentStepIndex = -1
	assert.Nil(t, CurrentStep(sc, s))

	s.CurrentStepIndex = 0
	step := CurrentStep(sc, s)
	require.NotNil(t, step)
	assert.Equal(t, "pick", step.ID)
}

func TestCurrentStepAppliesResolver(t *testing.T) {
	sc := &model.Scenario{
		ID: "dyn-demo",
		Steps: []model.Step{
			{ID: "start", Kind: model.StepSingleChoice, Options: []model.Option{{ID: "x"}}},
			{ID: "dyn", Kind: model.StepSingleChoice, Dynamic: true},
		},
		Resolvers: map[string]model.StepResolver{
			"dyn": func(session *model.Session, step model.Step) model.Step {
				step.Options = []model.Option{{ID: "resolved", NextStep: "start"}}
				return step
			},
		},
	}

	s := NewSession("user-1", sc)
	s.CurrentStepIndex = 1

	step := CurrentStep(sc, s)
	require.NotNil(t, step)
	require.Len(t, step.Options, 1)
	assert.Equal(t, "resolved", step.Options[0].ID)

	// the resolver must also drive branching on answer
	next := Advance(sc, s, "dyn", model.AnswerValue{Choice: "resolved"})
	assert.Equal(t, 0, next.CurrentStepIndex)

	// the static definition stays untouched
	assert.Empty(t, sc.Steps[1].Options)
}

func TestSkipToNext(t *testing.T) {
	sc := branchScenario()
	orig := NewSession("user-1", sc)

	next := SkipToNext(sc, orig)

	assert.Equal(t, 0, orig.CurrentStepIndex)
	assert.Equal(t, 1, next.CurrentStepIndex)
	assert.Empty(t, next.Answers)
}

func TestComplete(t *testing.T) {
	sc := branchScenario()
	orig := NewSession("user-1", sc)
	result := &model.Result{Title: "Готово"}

	done := Complete(orig, result)

	assert.Nil(t, orig.CompletedAt)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.Completed())
	assert.Equal(t, result, done.Result)
}
