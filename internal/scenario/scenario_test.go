package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pddtools/internal/model"
)

func TestRegistryComplete(t *testing.T) {
	for _, id := range IDs() {
		sc := Get(id)
		require.NotNil(t, sc, "trainer %s", id)
		assert.Equal(t, id, sc.ID)
		assert.NotEmpty(t, sc.Steps)
	}
	assert.Nil(t, Get("unknown"))
}

func TestScenariosAreWellFormed(t *testing.T) {
	for _, id := range IDs() {
		sc := Get(id)

		seen := map[string]bool{}
		for _, step := range sc.Steps {
			assert.NotEmpty(t, step.ID, "%s: step without id", id)
			assert.False(t, seen[step.ID], "%s: duplicate step id %s", id, step.ID)
			seen[step.ID] = true

			// every branch target must exist
			for _, opt := range step.Options {
				if opt.NextStep != "" {
					assert.NotNil(t, sc.StepByID(opt.NextStep), "%s: %s -> %s", id, step.ID, opt.NextStep)
				}
			}
			if step.NextStep != "" {
				assert.NotNil(t, sc.StepByID(step.NextStep), "%s: %s.nextStep", id, step.ID)
			}
			if step.ConfirmYes != "" {
				assert.NotNil(t, sc.StepByID(step.ConfirmYes), "%s: %s.confirmYes", id, step.ID)
			}
			if step.ConfirmNo != "" {
				assert.NotNil(t, sc.StepByID(step.ConfirmNo), "%s: %s.confirmNo", id, step.ID)
			}

			if step.Dynamic {
				_, ok := sc.Resolvers[step.ID]
				assert.True(t, ok, "%s: dynamic step %s without resolver", id, step.ID)
			}
		}

		last := sc.Steps[len(sc.Steps)-1]
		assert.Equal(t, model.StepResult, last.Kind, "%s ends with a result step", id)
	}
}

func sessionWithAnswer(stepID string, value model.AnswerValue) *model.Session {
	return &model.Session{
		Answers: map[string]model.Answer{
			stepID: {StepID: stepID, Value: value, Timestamp: time.Now()},
		},
	}
}

func TestResolveEmotionStrategy(t *testing.T) {
	step := *emotionsScenario.StepByID("em-strategy")

	t.Run("single negative emotion", func(t *testing.T) {
		s := sessionWithAnswer("em-current", model.AnswerValue{Choices: []string{"em-c-anxiety"}})
		got := resolveEmotionStrategy(s, step)
		assert.Equal(t, emotionStrategyOptions["fear-group"], got.Options)
	})

	t.Run("mixed emotions merge without duplicates", func(t *testing.T) {
		s := sessionWithAnswer("em-current", model.AnswerValue{
			Choices: []string{"em-c-anxiety", "em-c-confusion", "em-c-anger"},
		})
		got := resolveEmotionStrategy(s, step)

		require.Len(t, got.Options, 6)
		used := map[string]bool{}
		for _, o := range got.Options {
			assert.False(t, used[o.ID])
			used[o.ID] = true
		}
	})

	t.Run("no answer falls back to positive", func(t *testing.T) {
		s := &model.Session{Answers: map[string]model.Answer{}}
		got := resolveEmotionStrategy(s, step)
		assert.Equal(t, emotionStrategyOptions["positive"], got.Options)
	})

	t.Run("unknown option id falls back to positive", func(t *testing.T) {
		s := sessionWithAnswer("em-current", model.AnswerValue{Choices: []string{"nope"}})
		got := resolveEmotionStrategy(s, step)
		assert.Equal(t, emotionStrategyOptions["positive"], got.Options)
	})
}

func TestResolveMoneyRational(t *testing.T) {
	step := *moneyAnxietyScenario.StepByID("ma-rational")

	t.Run("belief picks its option set", func(t *testing.T) {
		s := sessionWithAnswer("ma-childhood", model.AnswerValue{Choice: "ma-ch-trees"})
		got := resolveMoneyRational(s, step)
		assert.Equal(t, moneyRationalOptions["scarcity"], got.Options)
	})

	t.Run("positive belief", func(t *testing.T) {
		s := sessionWithAnswer("ma-childhood", model.AnswerValue{Choice: "ma-ch-positive"})
		got := resolveMoneyRational(s, step)
		assert.Equal(t, moneyRationalOptions["positive"], got.Options)
	})

	t.Run("no answer falls back to positive", func(t *testing.T) {
		s := &model.Session{Answers: map[string]model.Answer{}}
		got := resolveMoneyRational(s, step)
		assert.Equal(t, moneyRationalOptions["positive"], got.Options)
	})
}
