// Package journal implements the self-observation diary and the
// progress check-in: keyword analysis of free-text entries, entry
// comparison and the supportive result texts shown to the user.
package journal

import (
	"math/rand"
	"sort"
	"strings"

	"pddtools/internal/model"
)

// DiaryStep is one question of the diary dialogue.
type DiaryStep struct {
	Key      string `json:"key" bson:"key"`
	Question string `json:"question" bson:"question"`
}

// DiaryTemplates is the configurable copy and dictionaries of the
// diary. Admins can override them; DefaultDiaryTemplates ships the
// built-in set.
type DiaryTemplates struct {
	Steps          []DiaryStep         `json:"steps" bson:"steps"`
	EmotionDict    map[string][]string `json:"emotion_dict" bson:"emotion_dict"`
	PatternRules   map[string][]string `json:"pattern_rules" bson:"pattern_rules"`
	EmotionLabels  map[string]string   `json:"emotion_labels" bson:"emotion_labels"`
	PatternLabels  map[string]string   `json:"pattern_labels" bson:"pattern_labels"`
	Summary        string              `json:"summary" bson:"summary"`
	EmotionsFound  string              `json:"emotions_found" bson:"emotions_found"`
	EmotionsNone   string              `json:"emotions_none" bson:"emotions_none"`
	PatternsNew    string              `json:"patterns_new" bson:"patterns_new"`
	PatternsRepeat string              `json:"patterns_repeat" bson:"patterns_repeat"`
	DynamicUp      string              `json:"dynamic_up" bson:"dynamic_up"`
	DynamicDown    string              `json:"dynamic_down" bson:"dynamic_down"`
	DynamicSame    string              `json:"dynamic_same" bson:"dynamic_same"`
	Questions      []string            `json:"questions" bson:"questions"`
	StartMessage   string              `json:"start_message" bson:"start_message"`
}

func matchKeywords(text string, keywords []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// DetectEmotions scans the entry texts against the emotion keyword
// dictionary. Every category with at least one hit becomes a tag;
// 2+ hits add 1 to the intensity score, 4+ hits add 2. Tags come
// back in sorted category order.
func DetectEmotions(texts []string, dict map[string][]string) ([]string, int) {
	combined := strings.Join(texts, " ")

	cats := make([]string, 0, len(dict))
	for cat := range dict {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	var tags []string
	score := 0
	for _, cat := range cats {
		hits := matchKeywords(combined, dict[cat])
		if hits == 0 {
			continue
		}
		tags = append(tags, cat)
		if hits >= 4 {
			score += 2
		} else if hits >= 2 {
			score++
		}
	}
	return tags, score
}

// DetectPatterns returns every thinking pattern whose trigger phrases
// appear in the entry texts, in sorted pattern order.
func DetectPatterns(texts []string, rules map[string][]string) []string {
	combined := strings.Join(texts, " ")

	pats := make([]string, 0, len(rules))
	for pat := range rules {
		pats = append(pats, pat)
	}
	sort.Strings(pats)

	var tags []string
	for _, pat := range pats {
		if matchKeywords(combined, rules[pat]) > 0 {
			tags = append(tags, pat)
		}
	}
	return tags
}

// DiaryResult is the analysis shown after an entry plus the
// reflection questions offered to the user.
type DiaryResult struct {
	Analysis  string
	Questions []string
}

// BuildDiaryResult composes the analysis text for a finished entry
// against the user's history. The rng picks the reflection questions.
func BuildDiaryResult(entry model.DiaryEntry, history []model.DiaryEntry, tpl *DiaryTemplates, rng *rand.Rand) DiaryResult {
	var lines []string

	lines = append(lines, strings.ReplaceAll(tpl.Summary, "{situation}", entry.Situation))

	if len(entry.EmotionTags) > 0 {
		lines = append(lines, strings.ReplaceAll(tpl.EmotionsFound, "{emotion_list}", labelList(entry.EmotionTags, tpl.EmotionLabels)))
	} else {
		lines = append(lines, tpl.EmotionsNone)
	}

	if len(entry.PatternTags) > 0 {
		lines = append(lines, strings.ReplaceAll(tpl.PatternsNew, "{pattern_list}", labelList(entry.PatternTags, tpl.PatternLabels)))
		repeats := 0
		for _, prev := range history {
			if sharesTag(entry.PatternTags, prev.PatternTags) {
				repeats++
			}
		}
		if repeats >= 2 {
			lines = append(lines, tpl.PatternsRepeat)
		}
	}

	if len(history) > 0 {
		prev := history[len(history)-1]
		switch {
		case entry.IntensityScore > prev.IntensityScore:
			lines = append(lines, tpl.DynamicUp)
		case entry.IntensityScore < prev.IntensityScore:
			lines = append(lines, tpl.DynamicDown)
		default:
			lines = append(lines, tpl.DynamicSame)
		}
	}

	return DiaryResult{
		Analysis:  strings.Join(lines, "\n\n"),
		Questions: pickQuestions(tpl.Questions, 3, rng),
	}
}

func labelList(tags []string, labels map[string]string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		if l, ok := labels[t]; ok {
			out[i] = l
		} else {
			out[i] = t
		}
	}
	return strings.Join(out, ", ")
}

func sharesTag(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func pickQuestions(all []string, count int, rng *rand.Rand) []string {
	shuffled := append([]string(nil), all...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}
	return shuffled
}

type supportTemplate struct {
	keywords []string
	texts    []string
}

var supportTemplates = []supportTemplate{
	{
		keywords: []string{"тревога", "страх", "нервничаю", "переживаю", "волнуюсь", "паника", "беспокоюсь"},
		texts: []string{
			"Тревога — это сигнал, а не приговор. Ты уже делаешь важный шаг — наблюдаешь за ней вместо того, чтобы убегать.",
			"Когда мы признаём тревогу, она теряет часть своей силы. Ты справляешься — и это видно по твоим ответам.",
		},
	},
	{
		keywords: []string{"злость", "раздражение", "бесит", "злюсь", "агрессия", "ненавижу"},
		texts: []string{
			"Злость — это энергия. Вопрос не в том, чтобы её подавить, а в том, куда её направить. Ты уже начал разбираться.",
			"Раздражение часто говорит о нарушенных границах. Это здоровая реакция — и важно, что ты её заметил.",
		},
	},
	{
		keywords: []string{"грусть", "печаль", "тоска", "пустота", "одиночество", "одинок", "плачу"},
		texts: []string{
			"Грусть — это часть жизни, и она не делает тебя слабым. Наоборот, способность чувствовать — это твоя сила.",
			"Ты не один в этом. Само решение записать свои мысли — уже акт заботы о себе.",
		},
	},
	{
		keywords: []string{"устал", "нет сил", "выгорание", "выдохся", "истощён", "не могу"},
		texts: []string{
			"Усталость — это тело говорит: «Нужна пауза». Ты не ленишься — ты заслуживаешь восстановления.",
			"Когда энергии мало, даже маленькие шаги считаются. И эта запись — один из них.",
		},
	},
	{
		keywords: []string{"вина", "виноват", "стыдно", "стыд", "должен был"},
		texts: []string{
			"Чувство вины часто значит, что тебе не всё равно. Но самокритика без действия только отнимает силы. Ты уже на пути.",
			"Ты не обязан быть идеальным. Достаточно быть честным с собой — и ты это делаешь прямо сейчас.",
		},
	},
}

var genericSupport = []string{
	"Ты проделал важную работу сегодня. Само наблюдение за собой — это уже шаг к изменениям.",
	"Каждый раз, когда ты останавливаешься и рефлексируешь — ты становишься чуть ближе к себе. Это ценно.",
	"Ты не просто записал мысли — ты дал себе пространство подумать. Это больше, чем кажется.",
}

// GenerateSupport picks a supportive closing line matching the
// emotional tone of the reflection answers and the entry.
func GenerateSupport(answers []string, entry model.DiaryEntry, rng *rand.Rand) string {
	parts := append(append([]string(nil), answers...), entry.Situation, entry.Thoughts, entry.Emotions)
	combined := strings.ToLower(strings.Join(parts, " "))

	for _, tpl := range supportTemplates {
		for _, kw := range tpl.keywords {
			if strings.Contains(combined, kw) {
				return tpl.texts[rng.Intn(len(tpl.texts))]
			}
		}
	}
	return genericSupport[rng.Intn(len(genericSupport))]
}
