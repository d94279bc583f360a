package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pddtools/internal/barrier"
	"pddtools/internal/model"
)

type fakeBarrierCache struct {
	states map[string]*model.BarrierState
}

func newFakeBarrierCache() *fakeBarrierCache {
	return &fakeBarrierCache{states: map[string]*model.BarrierState{}}
}

func (c *fakeBarrierCache) Set(ctx context.Context, userID string, state *model.BarrierState) error {
	copied := *state
	c.states[userID] = &copied
	return nil
}

func (c *fakeBarrierCache) Get(ctx context.Context, userID string) (*model.BarrierState, error) {
	return c.states[userID], nil
}

func (c *fakeBarrierCache) Delete(ctx context.Context, userID string) error {
	delete(c.states, userID)
	return nil
}

func newBarrierFixture() (*BarrierService, *fakeBarrierCache, *fakeToolSessionRepo) {
	states := newFakeBarrierCache()
	sessions := &fakeToolSessionRepo{}
	return NewBarrierService(states, sessions), states, sessions
}

func TestBarrierServiceStart(t *testing.T) {
	svc, states, _ := newBarrierFixture()

	turn, err := svc.Start(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, model.PhaseWelcome, turn.State.Phase)
	require.NotNil(t, turn.Prompt)
	assert.Equal(t, "confirm", turn.Prompt.Widget)
	assert.False(t, turn.Finished)
	assert.NotNil(t, states.states["u1"])
}

func TestBarrierServiceCurrentStartsWhenEmpty(t *testing.T) {
	svc, _, _ := newBarrierFixture()

	turn, err := svc.Current(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseWelcome, turn.State.Phase)
}

func TestBarrierServiceAnswerAdvancesPhases(t *testing.T) {
	svc, _, _ := newBarrierFixture()
	ctx := context.Background()

	_, err := svc.Start(ctx, "u1")
	require.NoError(t, err)

	turn, err := svc.Answer(ctx, "u1", model.AnswerValue{Choice: "Начать"})
	require.NoError(t, err)
	assert.Equal(t, model.PhaseContext, turn.State.Phase)
	assert.Equal(t, barrier.Contexts, turn.Prompt.Options)

	turn, err = svc.Answer(ctx, "u1", model.AnswerValue{Choice: barrier.Contexts[0]})
	require.NoError(t, err)
	assert.Equal(t, model.PhaseStrength, turn.State.Phase)
	assert.Equal(t, 3, turn.Prompt.Max)
}

func TestBarrierServiceFullDialogueArchives(t *testing.T) {
	svc, states, sessions := newBarrierFixture()
	ctx := context.Background()

	answers := []model.AnswerValue{
		{Choice: "Начать"},
		{Choice: "Запуск своего дела"},
		{Choices: []string{"Упорство", "Креативность"}},
		{Choice: "Страх ошибки"},
		{Choice: "Поехали"},
		{Text: "Составил план"},
		{Number: 8},
		{Number: 2},
		{Choice: barrier.AddStepChoice},
		{Text: "Показал план другу"},
		{Number: 7},
		{Number: 8},
		{Choice: "Перейти к анализу"},
		{Choice: barrier.ConfirmBreakChoice},
		{Choice: "Дальше"},
		{Choices: []string{"Гибкость"}},
	}

	_, err := svc.Start(ctx, "u1")
	require.NoError(t, err)

	var turn *BarrierTurn
	for _, a := range answers {
		turn, err = svc.Answer(ctx, "u1", a)
		require.NoError(t, err)
	}

	assert.Equal(t, model.PhaseRecalc, turn.State.Phase)
	require.NotNil(t, turn.NewY)
	assert.Equal(t, 6.0, *turn.NewY)
	require.NotNil(t, turn.Profile)
	assert.NotEmpty(t, turn.Profile.Title)

	turn, err = svc.Answer(ctx, "u1", model.AnswerValue{Choice: "Дальше"})
	require.NoError(t, err)
	assert.Equal(t, model.PhaseResult, turn.State.Phase)

	turn, err = svc.Answer(ctx, "u1", model.AnswerValue{Choice: "Сохранить"})
	require.NoError(t, err)
	assert.True(t, turn.Finished)

	// archived and cleared
	require.Len(t, sessions.sessions, 1)
	archived := sessions.sessions[0]
	assert.Equal(t, model.ToolBarrierBot, archived.Tool)
	assert.Equal(t, "Запуск своего дела", archived.Data["selectedContext"])
	assert.Equal(t, 1, archived.Data["breakStep"])
	assert.Nil(t, states.states["u1"])

	// the next interaction starts over
	fresh, err := svc.Current(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseWelcome, fresh.State.Phase)
}

func TestBarrierServiceAnswerWithoutStateStartsFresh(t *testing.T) {
	svc, _, _ := newBarrierFixture()

	turn, err := svc.Answer(context.Background(), "u1", model.AnswerValue{Choice: "Начать"})
	require.NoError(t, err)
	assert.Equal(t, model.PhaseContext, turn.State.Phase)
}

func TestBarrierServicePromptsPerPhase(t *testing.T) {
	tests := []struct {
		phase      model.BarrierPhase
		widget     string
		hasOptions bool
	}{
		{model.PhaseWelcome, "confirm", false},
		{model.PhaseContext, "choices", true},
		{model.PhaseStrength, "multi_choices", true},
		{model.PhaseWeakness, "choices", true},
		{model.PhaseStepText, "text_input", false},
		{model.PhaseStepX, "slider", false},
		{model.PhaseStepY, "slider", false},
		{model.PhaseStepMore, "choices", true},
		{model.PhaseBreakPoint, "choices", true},
		{model.PhaseBreakManual, "slider", false},
		{model.PhaseResult, "confirm", false},
	}

	for _, tt := range tests {
		state := model.BarrierState{Phase: tt.phase, BreakStep: -1}
		prompt := promptFor(state)
		require.NotNil(t, prompt, "phase %s", tt.phase)
		assert.Equal(t, tt.widget, prompt.Widget, "phase %s", tt.phase)
		assert.Equal(t, tt.hasOptions, len(prompt.Options) > 0, "phase %s", tt.phase)
	}

	assert.Nil(t, promptFor(model.BarrierState{Phase: model.PhaseDone}))
}

func TestBarrierServiceBreakPointPromptNamesStep(t *testing.T) {
	state := model.BarrierState{
		Phase:     model.PhaseBreakPoint,
		BreakStep: 0,
		Steps:     []model.BarrierStep{{Index: 1, Text: "Составил план", X: 5, Y: 8}},
	}
	prompt := promptFor(state)
	require.NotNil(t, prompt)
	assert.Contains(t, prompt.Text, "Составил план")
	assert.Contains(t, prompt.Options, barrier.ConfirmBreakChoice)
}
