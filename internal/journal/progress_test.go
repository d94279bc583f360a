package journal

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pddtools/internal/model"
)

func TestDeltaLabel(t *testing.T) {
	labels := DefaultProgressTemplates().DeltaLabels

	tests := []struct {
		delta int
		want  string
	}{
		{3, labels.StrongUp},
		{2, labels.StrongUp},
		{1, labels.MildUp},
		{0, labels.None},
		{-1, labels.MildDown},
		{-2, labels.StrongDown},
		{-5, labels.StrongDown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deltaLabel(tt.delta, labels), "delta %d", tt.delta)
	}
}

func TestDeltaSign(t *testing.T) {
	assert.Equal(t, "+2", deltaSign(2))
	assert.Equal(t, "0", deltaSign(0))
	assert.Equal(t, "-3", deltaSign(-3))
}

func TestBuildProgressResultFirstEntry(t *testing.T) {
	tpl := DefaultProgressTemplates()
	rng := rand.New(rand.NewSource(1))

	entry := model.ProgressEntry{
		Date:       "2026-09-01",
		Values:     map[string]float64{"energy": 7},
		MainFocus:  "Финансы",
		KeyThought: "Пора действовать",
	}

	out := BuildProgressResult(entry, nil, tpl, 1, rng)

	assert.Contains(t, out, tpl.FirstEntry)
	assert.Contains(t, out, "Фокус: Финансы")
	assert.Contains(t, out, "Мысль: Пора действовать")
	assert.Contains(t, out, tpl.Conclusions[2])
	assert.NotContains(t, out, "Сравнение")
}

func TestBuildProgressResultFirstEntryWithoutThought(t *testing.T) {
	tpl := DefaultProgressTemplates()
	rng := rand.New(rand.NewSource(1))

	out := BuildProgressResult(model.ProgressEntry{MainFocus: "Обучение"}, nil, tpl, 1, rng)
	assert.NotContains(t, out, "Мысль:")
}

func TestBuildProgressResultComparison(t *testing.T) {
	tpl := DefaultProgressTemplates()
	rng := rand.New(rand.NewSource(1))

	prev := &model.ProgressEntry{
		Values:    map[string]float64{"energy": 5, "confidence": 5, "clarity": 5, "discipline": 5, "mood": 5},
		MainFocus: "Финансы",
	}
	entry := model.ProgressEntry{
		Values:    map[string]float64{"energy": 7, "confidence": 6, "clarity": 5, "discipline": 4, "mood": 8},
		MainFocus: "Финансы",
	}

	out := BuildProgressResult(entry, prev, tpl, 2, rng)

	assert.Contains(t, out, "Энергия: 5 → 7 (+2) — заметный рост")
	assert.Contains(t, out, "Уверенность: 5 → 6 (+1) — небольшой рост")
	assert.Contains(t, out, "Ясность целей: 5 → 5 (0) — без изменений")
	assert.Contains(t, out, "Дисциплина: 5 → 4 (-1) — небольшое снижение")
	assert.Contains(t, out, "Выросло: 3  ·  Снизилось: 1  ·  Без изменений: 1")
	assert.Contains(t, out, tpl.DynamicPositive)
	assert.Contains(t, out, tpl.FocusSame)
	assert.Contains(t, out, "Текущий фокус: Финансы")
	// fewer than three entries pins the closing conclusion
	assert.Contains(t, out, tpl.Conclusions[2])
}

func TestBuildProgressResultNegativeDynamic(t *testing.T) {
	tpl := DefaultProgressTemplates()
	rng := rand.New(rand.NewSource(1))

	prev := &model.ProgressEntry{
		Values:    map[string]float64{"energy": 7, "confidence": 7, "clarity": 7, "discipline": 7, "mood": 7},
		MainFocus: "Финансы",
	}
	entry := model.ProgressEntry{
		Values:    map[string]float64{"energy": 4, "confidence": 5, "clarity": 6, "discipline": 7, "mood": 6},
		MainFocus: "Отношения",
	}

	out := BuildProgressResult(entry, prev, tpl, 2, rng)

	assert.Contains(t, out, tpl.DynamicNegative)
	assert.Contains(t, out, tpl.FocusChanged)
}

func TestBuildProgressResultStableDynamic(t *testing.T) {
	tpl := DefaultProgressTemplates()
	rng := rand.New(rand.NewSource(1))

	values := map[string]float64{"energy": 5, "confidence": 5, "clarity": 5, "discipline": 5, "mood": 5}
	prev := &model.ProgressEntry{Values: values, MainFocus: "Финансы"}
	entry := model.ProgressEntry{Values: values, MainFocus: "Финансы"}

	out := BuildProgressResult(entry, prev, tpl, 2, rng)
	assert.Contains(t, out, tpl.DynamicStable)
}

func TestBuildProgressResultVariedConclusion(t *testing.T) {
	tpl := DefaultProgressTemplates()
	rng := rand.New(rand.NewSource(1))

	values := map[string]float64{"energy": 5}
	prev := &model.ProgressEntry{Values: values, MainFocus: "Финансы"}
	entry := model.ProgressEntry{Values: values, MainFocus: "Финансы"}

	out := BuildProgressResult(entry, prev, tpl, 5, rng)

	varied := strings.Contains(out, tpl.Conclusions[0]) || strings.Contains(out, tpl.Conclusions[1])
	assert.True(t, varied)
	assert.NotContains(t, out, tpl.Conclusions[2])
}
