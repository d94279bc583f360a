package scenario

import "pddtools/internal/model"

// Resolver funcs read their scenario back, so the maps cannot live in
// the scenario composite literals.
func init() {
	emotionsScenario.Resolvers = map[string]model.StepResolver{
		"em-strategy": resolveEmotionStrategy,
	}
	moneyAnxietyScenario.Resolvers = map[string]model.StepResolver{
		"ma-rational": resolveMoneyRational,
	}
}

// Strategy options per emotion group. Tags on the "em-current" options
// select which groups apply; "negative"/"positive" are reserved markers.
var emotionStrategyOptions = map[string][]model.Option{
	"fear-group": {
		{ID: "str-prepare", Label: "Подготовиться к тому, что пугает", Score: pts(3)},
		{ID: "str-split-task", Label: "Разделить задачу на маленький шаг", Score: pts(3)},
		{ID: "str-talk-fear", Label: "Обсудить страх с кем-то", Score: pts(2)},
	},
	"anger-group": {
		{ID: "str-boundaries", Label: "Обсудить границы", Score: pts(3)},
		{ID: "str-pause", Label: "Сделать паузу перед реакцией", Score: pts(3)},
		{ID: "str-formulate", Label: "Сформулировать требования", Score: pts(2)},
	},
	"guilt-group": {
		{ID: "str-fix", Label: "Исправить ситуацию", Score: pts(3)},
		{ID: "str-forgive", Label: "Попросить прощения", Score: pts(2)},
		{ID: "str-release", Label: "Отпустить — вы сделали, что могли", Score: pts(3)},
	},
	"fatigue-group": {
		{ID: "str-rest", Label: "Позволить себе отдых", Score: pts(3)},
		{ID: "str-delegate", Label: "Делегирование — передать часть задач", Score: pts(3)},
		{ID: "str-reduce", Label: "Снизить нагрузку на ближайшие дни", Score: pts(2)},
	},
	"positive": {
		{ID: "str-anchor", Label: "Закрепить результат — записать, что сработало", Score: pts(3)},
		{ID: "str-next-step", Label: "Сделать следующий шаг, пока есть энергия", Score: pts(3)},
		{ID: "str-share", Label: "Поделиться с кем-то важным", Score: pts(2)},
	},
}

// Rational-step options per money belief tag on "ma-childhood" options.
var moneyRationalOptions = map[string][]model.Option{
	"worthlessness": {
		{ID: "rat-market", Label: "Сравнить свою цену с рынком", Score: pts(3)},
		{ID: "rat-value", Label: "Проанализировать ценность для клиента", Score: pts(3)},
		{ID: "rat-contribution", Label: "Посчитать свой вклад в результат", Score: pts(2)},
	},
	"distrust": {
		{ID: "rat-stats", Label: "Проверить статистику: уходят ли клиенты?", Score: pts(3)},
		{ID: "rat-test-raise", Label: "Протестировать повышение на 1 клиенте", Score: pts(3)},
		{ID: "rat-survey", Label: "Провести опрос среди клиентов", Score: pts(2)},
	},
	"scarcity": {
		{ID: "rat-plan", Label: "Сделать финансовый план на 3 месяца", Score: pts(3)},
		{ID: "rat-cushion", Label: "Создать подушку безопасности", Score: pts(3)},
		{ID: "rat-sources", Label: "Найти дополнительный источник дохода", Score: pts(2)},
	},
	"overwork": {
		{ID: "rat-hourly", Label: "Посчитать стоимость часа работы", Score: pts(3)},
		{ID: "rat-automate", Label: "Автоматизировать рутину", Score: pts(2)},
		{ID: "rat-delegate2", Label: "Передать часть задач", Score: pts(3)},
	},
	"money-fear": {
		{ID: "rat-small-step", Label: "Начать с минимального финансового шага", Score: pts(3)},
		{ID: "rat-educate", Label: "Изучить тему: книга, курс, подкаст", Score: pts(2)},
		{ID: "rat-mentor", Label: "Найти наставника в финансовом вопросе", Score: pts(3)},
	},
	"money-guilt": {
		{ID: "rat-deserve", Label: "Составить список: что я даю за эти деньги", Score: pts(3)},
		{ID: "rat-permission", Label: "Дать себе разрешение зарабатывать больше", Score: pts(2)},
		{ID: "rat-separate", Label: "Разделить свою вину и факты", Score: pts(3)},
	},
	"positive": {
		{ID: "rat-amplify", Label: "Закрепить успех — записать, что сработало", Score: pts(3)},
		{ID: "rat-next", Label: "Сделать следующий финансовый шаг", Score: pts(3)},
		{ID: "rat-share-success", Label: "Поделиться результатом", Score: pts(2)},
	},
}

// resolveEmotionStrategy rebuilds the em-strategy options from the
// emotion(s) chosen at em-current. Unknown groups fall back to the
// positive set so the step always offers something.
func resolveEmotionStrategy(session *model.Session, step model.Step) model.Step {
	var selected []string
	if a, ok := session.Answer("em-current"); ok {
		if len(a.Value.Choices) > 0 {
			selected = a.Value.Choices
		} else if a.Value.Choice != "" {
			selected = []string{a.Value.Choice}
		}
	}

	src := emotionsScenario.StepByID("em-current")
	groups := make([]string, 0, len(selected))
	seen := map[string]bool{}
	for _, id := range selected {
		opt := src.Option(id)
		if opt == nil {
			continue
		}
		for _, tag := range opt.Tags {
			if tag == "negative" {
				continue
			}
			if !seen[tag] {
				seen[tag] = true
				groups = append(groups, tag)
			}
		}
	}

	step.Options = collectOptions(groups, emotionStrategyOptions)
	return step
}

// resolveMoneyRational rebuilds the ma-rational options from the
// childhood money belief chosen at ma-childhood.
func resolveMoneyRational(session *model.Session, step model.Step) model.Step {
	var choice string
	if a, ok := session.Answer("ma-childhood"); ok {
		choice = a.Value.Choice
	}

	tags := []string{"positive"}
	if opt := moneyAnxietyScenario.StepByID("ma-childhood").Option(choice); opt != nil && len(opt.Tags) > 0 {
		tags = opt.Tags
	}

	step.Options = collectOptions(tags, moneyRationalOptions)
	return step
}

func collectOptions(groups []string, table map[string][]model.Option) []model.Option {
	var out []model.Option
	used := map[string]bool{}
	for _, g := range groups {
		opts, ok := table[g]
		if !ok {
			opts = table["positive"]
		}
		for _, o := range opts {
			if !used[o.ID] {
				used[o.ID] = true
				out = append(out, o)
			}
		}
	}
	if len(out) == 0 {
		out = append(out, table["positive"]...)
	}
	return out
}
