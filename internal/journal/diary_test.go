package journal

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pddtools/internal/model"
)

func TestDetectEmotions(t *testing.T) {
	dict := DefaultDiaryTemplates().EmotionDict

	tests := []struct {
		name      string
		texts     []string
		wantTags  []string
		wantScore int
	}{
		{
			"no markers",
			[]string{"Сходил в магазин", "Купил хлеб"},
			nil, 0,
		},
		{
			"single hit tags without score",
			[]string{"Была небольшая тревога перед встречей"},
			[]string{"anxiety"}, 0,
		},
		{
			"two hits add one",
			[]string{"Тревога не отпускала, я боюсь опоздать"},
			[]string{"anxiety"}, 1,
		},
		{
			"four hits add two",
			[]string{"Тревога, страх, паника — я нервничаю весь день"},
			[]string{"anxiety"}, 2,
		},
		{
			"categories come back sorted",
			[]string{"Злюсь и виноват одновременно, тревога сверху"},
			[]string{"anger", "anxiety", "guilt"}, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, score := DetectEmotions(tt.texts, dict)
			assert.Equal(t, tt.wantTags, tags)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestDetectEmotionsCaseInsensitive(t *testing.T) {
	dict := DefaultDiaryTemplates().EmotionDict
	tags, _ := DetectEmotions([]string{"ТРЕВОГА весь день"}, dict)
	assert.Equal(t, []string{"anxiety"}, tags)
}

func TestDetectPatterns(t *testing.T) {
	rules := DefaultDiaryTemplates().PatternRules

	tags := DetectPatterns([]string{"Я должен был успеть, теперь всё пропало"}, rules)
	assert.Equal(t, []string{"catastrophizing", "should"}, tags)

	assert.Empty(t, DetectPatterns([]string{"Обычный рабочий день"}, rules))
}

func TestBuildDiaryResult(t *testing.T) {
	tpl := DefaultDiaryTemplates()
	rng := rand.New(rand.NewSource(1))

	entry := model.DiaryEntry{
		Date:           "2026-09-01",
		Situation:      "Сорвалась важная встреча",
		EmotionTags:    []string{"anxiety", "anger"},
		PatternTags:    []string{"catastrophizing"},
		IntensityScore: 3,
	}

	res := BuildDiaryResult(entry, nil, tpl, rng)

	assert.Contains(t, res.Analysis, "«Сорвалась важная встреча»")
	assert.Contains(t, res.Analysis, "Тревога, Злость")
	assert.Contains(t, res.Analysis, "Катастрофизация")
	assert.NotContains(t, res.Analysis, tpl.PatternsRepeat)
	// no history means no dynamics line
	assert.NotContains(t, res.Analysis, tpl.DynamicSame)
	require.Len(t, res.Questions, 3)
	for _, q := range res.Questions {
		assert.Contains(t, tpl.Questions, q)
	}
}

func TestBuildDiaryResultNoEmotions(t *testing.T) {
	tpl := DefaultDiaryTemplates()
	rng := rand.New(rand.NewSource(1))

	entry := model.DiaryEntry{Situation: "Спокойный день"}
	res := BuildDiaryResult(entry, nil, tpl, rng)

	assert.Contains(t, res.Analysis, tpl.EmotionsNone)
}

func TestBuildDiaryResultDynamics(t *testing.T) {
	tpl := DefaultDiaryTemplates()
	history := []model.DiaryEntry{{IntensityScore: 2}}

	tests := []struct {
		name     string
		score    int
		wantLine string
	}{
		{"rising", 4, tpl.DynamicUp},
		{"falling", 1, tpl.DynamicDown},
		{"stable", 2, tpl.DynamicSame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			entry := model.DiaryEntry{Situation: "x", IntensityScore: tt.score}
			res := BuildDiaryResult(entry, history, tpl, rng)
			assert.Contains(t, res.Analysis, tt.wantLine)
		})
	}
}

func TestBuildDiaryResultRepeatedPattern(t *testing.T) {
	tpl := DefaultDiaryTemplates()
	rng := rand.New(rand.NewSource(1))

	entry := model.DiaryEntry{
		Situation:   "x",
		PatternTags: []string{"self-blame"},
	}
	history := []model.DiaryEntry{
		{PatternTags: []string{"self-blame"}},
		{PatternTags: []string{"should"}},
		{PatternTags: []string{"self-blame", "black-white"}},
	}

	res := BuildDiaryResult(entry, history, tpl, rng)
	assert.Contains(t, res.Analysis, tpl.PatternsRepeat)
}

func TestGenerateSupport(t *testing.T) {
	entry := model.DiaryEntry{Situation: "x", Thoughts: "y", Emotions: "z"}

	tests := []struct {
		name    string
		answers []string
		wantAny []string
	}{
		{"anxiety keywords", []string{"весь день тревога"}, supportTemplates[0].texts},
		{"anger keywords", []string{"меня это бесит"}, supportTemplates[1].texts},
		{"fatigue keywords", []string{"совсем нет сил"}, supportTemplates[3].texts},
		{"no keywords fall back to generic", []string{"обычный день"}, genericSupport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			got := GenerateSupport(tt.answers, entry, rng)
			assert.Contains(t, tt.wantAny, got)
		})
	}
}

func TestGenerateSupportReadsEntryFields(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	entry := model.DiaryEntry{Emotions: "сильная грусть и тоска"}
	got := GenerateSupport(nil, entry, rng)
	assert.Contains(t, supportTemplates[2].texts, got)
}

func TestPickQuestionsShortList(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := pickQuestions([]string{"a", "b"}, 3, rng)
	assert.ElementsMatch(t, []string{"a", "b"}, got)
}

func TestLabelListUnknownTagPassesThrough(t *testing.T) {
	out := labelList([]string{"anxiety", "custom"}, DefaultDiaryTemplates().EmotionLabels)
	assert.Equal(t, "Тревога, custom", out)
}

func TestDefaultDiaryTemplatesComplete(t *testing.T) {
	tpl := DefaultDiaryTemplates()

	require.Len(t, tpl.Steps, 5)
	for _, step := range tpl.Steps {
		assert.NotEmpty(t, step.Key)
		assert.NotEmpty(t, step.Question)
	}
	for cat := range tpl.EmotionDict {
		assert.Contains(t, tpl.EmotionLabels, cat)
	}
	for pat := range tpl.PatternRules {
		assert.Contains(t, tpl.PatternLabels, pat)
	}
	assert.True(t, strings.Contains(tpl.Summary, "{situation}"))
	assert.True(t, strings.Contains(tpl.EmotionsFound, "{emotion_list}"))
	assert.True(t, strings.Contains(tpl.PatternsNew, "{pattern_list}"))
	assert.GreaterOrEqual(t, len(tpl.Questions), 3)
}
