package barrier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pddtools/internal/model"
)

func steps(pairs ...[2]float64) []model.BarrierStep {
	out := make([]model.BarrierStep, len(pairs))
	for i, p := range pairs {
		out[i] = model.BarrierStep{Index: i + 1, X: p[0], Y: p[1]}
	}
	return out
}

func TestDetectBreakPoint(t *testing.T) {
	tests := []struct {
		name  string
		steps []model.BarrierStep
		want  int
	}{
		{"empty curve", nil, -1},
		{"single anxious step", steps([2]float64{5, 8}), 0},
		{"first high anxiety wins", steps([2]float64{8, 2}, [2]float64{7, 7}, [2]float64{6, 9}), 1},
		{"belief halved", steps([2]float64{8, 2}, [2]float64{3, 3}), 1},
		{"anxiety checked before belief drop", steps([2]float64{8, 7}, [2]float64{3, 2}), 0},
		{"exact half is not a break", steps([2]float64{8, 2}, [2]float64{4, 3}), -1},
		{"calm curve", steps([2]float64{6, 2}, [2]float64{7, 3}, [2]float64{6, 4}), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBreakPoint(tt.steps))
		})
	}
}

func TestDetectProfile(t *testing.T) {
	tests := []struct {
		name  string
		steps []model.BarrierStep
		want  string
	}{
		{"empty curve", nil, ""},
		{"ambitious anxious", steps([2]float64{8, 8}, [2]float64{8, 8}), ProfileAmbitiousAnxious},
		{"low belief", steps([2]float64{3, 2}, [2]float64{4, 3}), ProfileLowBelief},
		{"fear of evaluation", steps([2]float64{6, 1}, [2]float64{6, 8}), ProfileFearOfEvaluation},
		{"chronic anxiety", steps([2]float64{6, 5}, [2]float64{6, 6}), ProfileChronicAnxiety},
		{"balanced", steps([2]float64{6, 2}, [2]float64{6, 3}), ProfileBalanced},
		{"ambition beats spread", steps([2]float64{8, 4}, [2]float64{8, 10}), ProfileAmbitiousAnxious},
		{"low belief beats spread", steps([2]float64{2, 1}, [2]float64{3, 9}), ProfileLowBelief},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectProfile(tt.steps))
		})
	}
}

func TestDetectProfileHasText(t *testing.T) {
	for _, p := range []string{
		ProfileAmbitiousAnxious,
		ProfileLowBelief,
		ProfileFearOfEvaluation,
		ProfileChronicAnxiety,
		ProfileBalanced,
	} {
		text, ok := ProfileTexts[p]
		assert.True(t, ok, "profile %s", p)
		assert.NotEmpty(t, text.Title)
		assert.NotEmpty(t, text.Description)
	}
}

func TestRecalcY(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		weakness string
		count    int
		want     float64
	}{
		{"one strength, known weakness", 8, "Страх ошибки", 1, 6},
		{"two strengths flatten", 8, "Страх ошибки", 2, 5},
		{"unknown weakness defaults to 2", 3, "Усталость", 1, 1},
		{"burnout reduces by 1", 8, "Быстрое выгорание", 1, 7},
		{"no strengths change nothing", 8, "Страх ошибки", 0, 8},
		{"clamped at zero", 2, "Страх ошибки", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecalcY(tt.y, tt.weakness, tt.count))
		})
	}
}
