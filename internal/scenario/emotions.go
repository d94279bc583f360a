package scenario

import "pddtools/internal/model"

var emotionsScenario = &model.Scenario{
	ID: EmotionsInAction,
	Steps: []model.Step{
		{
			ID:    "em-intro",
			Kind:  model.StepIntro,
			Title: "Эмоции в действии",
			Description: "Этот тренажёр поможет вам лучше понять свои эмоции: распознать, что вы чувствуете, " +
				"найти причину и научиться реагировать осознанно. Чем чаще вы проходите его, тем точнее " +
				"становится ваш эмоциональный радар.",
		},
		{
			ID:            "em-current",
			Kind:          model.StepSingleChoice,
			Title:         "Что вы чувствуете прямо сейчас?",
			Description:   "Выберите эмоцию, которая ближе всего к вашему текущему состоянию. Если сложно определить — это тоже важная информация.",
			ScoreCategory: "awareness",
			Options: []model.Option{
				{ID: "em-c-joy", Label: "Радость, воодушевление", Score: pts(4), Tags: []string{"positive"}},
				{ID: "em-c-sadness", Label: "Грусть, печаль", Score: pts(3), Tags: []string{"guilt-group"}},
				{ID: "em-c-anger", Label: "Злость, раздражение", Score: pts(3), Tags: []string{"anger-group"}},
				{ID: "em-c-anxiety", Label: "Тревога, беспокойство", Score: pts(2), Tags: []string{"fear-group"}},
				{ID: "em-c-calm", Label: "Спокойствие, умиротворение", Score: pts(5), Tags: []string{"positive"}},
				{ID: "em-c-confusion", Label: "Растерянность, непонимание", Score: pts(2), Tags: []string{"fear-group"}},
				{ID: "em-c-irritation", Label: "Раздражительность, напряжение", Score: pts(2), Tags: []string{"anger-group"}},
				{ID: "em-c-emptiness", Label: "Пустота, безразличие", Score: pts(1), Tags: []string{"fatigue-group"}},
			},
		},
		{
			ID:            "em-intensity",
			Kind:          model.StepScale,
			Title:         "Насколько интенсивна эта эмоция?",
			Description:   "Оцените силу того, что вы чувствуете. Даже слабая эмоция заслуживает внимания.",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Едва заметна", Max: "Захлёстывает полностью"},
			ScoreCategory: "awareness",
		},
		{
			ID:            "em-body",
			Kind:          model.StepMultipleChoice,
			Title:         "Где в теле вы ощущаете эту эмоцию?",
			Description:   "Эмоции всегда отражаются в теле. Выберите все зоны, которые откликаются.",
			ScoreCategory: "awareness",
			Options: []model.Option{
				{ID: "em-b-chest", Label: "Грудная клетка (сжатие, тяжесть, тепло)", Score: pts(1)},
				{ID: "em-b-throat", Label: "Горло (ком, сдавленность)", Score: pts(1)},
				{ID: "em-b-stomach", Label: "Живот (бабочки, тяжесть, тошнота)", Score: pts(1)},
				{ID: "em-b-head", Label: "Голова (напряжение, туман, давление)", Score: pts(1)},
				{ID: "em-b-shoulders", Label: "Плечи и шея (зажатость)", Score: pts(1)},
				{ID: "em-b-hands", Label: "Руки (дрожь, холод, потливость)", Score: pts(1)},
				{ID: "em-b-none", Label: "Не могу определить конкретное место", Score: pts(0)},
			},
		},
		{
			ID:            "em-trigger",
			Kind:          model.StepSingleChoice,
			Title:         "Что вызвало эту эмоцию?",
			Description:   "Попробуйте найти причину. Иногда триггер очевиден, иногда эмоция «накопилась».",
			ScoreCategory: "triggers",
			Options: []model.Option{
				{ID: "em-t-person", Label: "Общение с конкретным человеком", Score: pts(3)},
				{ID: "em-t-future", Label: "Мысли о будущем", Score: pts(4)},
				{ID: "em-t-memory", Label: "Воспоминание о прошлом", Score: pts(3)},
				{ID: "em-t-work", Label: "Рабочая ситуация", Score: pts(3)},
				{ID: "em-t-health", Label: "Беспокойство о здоровье", Score: pts(4)},
				{ID: "em-t-money", Label: "Финансовые переживания", Score: pts(4)},
				{ID: "em-t-relationship", Label: "Отношения с близкими", Score: pts(3)},
				{ID: "em-t-unclear", Label: "Не могу определить причину", Score: pts(5)},
			},
		},
		{
			ID:            "em-reaction",
			Kind:          model.StepSingleChoice,
			Title:         "Как вы обычно реагируете на эту эмоцию?",
			Description:   "Нет плохих ответов — это наблюдение за своими паттернами.",
			ScoreCategory: "regulation",
			Options: []model.Option{
				{ID: "em-r-suppress", Label: "Подавляю, стараюсь не чувствовать", Score: pts(1)},
				{ID: "em-r-express", Label: "Выражаю открыто (иногда чрезмерно)", Score: pts(2)},
				{ID: "em-r-analyze", Label: "Анализирую, пытаюсь понять причину", Score: pts(4)},
				{ID: "em-r-distract", Label: "Отвлекаюсь (еда, соцсети, сериалы)", Score: pts(1)},
				{ID: "em-r-physical", Label: "Направляю в физическую активность", Score: pts(5)},
				{ID: "em-r-talk", Label: "Говорю с кем-то о своих чувствах", Score: pts(4)},
			},
		},
		{
			ID:            "em-frequency",
			Kind:          model.StepSingleChoice,
			Title:         "Как часто эта эмоция вас посещает?",
			Description:   "Повторяющиеся эмоции могут указывать на важный паттерн.",
			ScoreCategory: "triggers",
			Options: []model.Option{
				{ID: "em-freq-rare", Label: "Это редкость — впервые или очень давно", Score: pts(1)},
				{ID: "em-freq-sometimes", Label: "Иногда — раз в несколько недель", Score: pts(2)},
				{ID: "em-freq-often", Label: "Довольно часто — несколько раз в неделю", Score: pts(4)},
				{ID: "em-freq-daily", Label: "Почти каждый день", Score: pts(5)},
			},
		},
		{
			ID:            "em-strategy",
			Kind:          model.StepSingleChoice,
			Title:         "Какая стратегия поможет вам с этой эмоцией?",
			Description:   "Варианты подобраны под то, что вы сейчас чувствуете. Выберите самый реалистичный.",
			ScoreCategory: "regulation",
			Dynamic:       true,
		},
		{
			ID:            "em-help",
			Kind:          model.StepMultipleChoice,
			Title:         "Что могло бы помочь вам прямо сейчас?",
			Description:   "Выберите всё, что кажется подходящим. Доверяйте себе.",
			ScoreCategory: "regulation",
			Options: []model.Option{
				{ID: "em-h-breath", Label: "Несколько глубоких вдохов", Score: pts(2)},
				{ID: "em-h-walk", Label: "Прогулка или движение", Score: pts(2)},
				{ID: "em-h-talk", Label: "Поговорить с кем-то", Score: pts(2)},
				{ID: "em-h-write", Label: "Записать свои мысли", Score: pts(2)},
				{ID: "em-h-rest", Label: "Просто отдохнуть", Score: pts(1)},
				{ID: "em-h-music", Label: "Послушать музыку", Score: pts(1)},
				{ID: "em-h-nothing", Label: "Ничего — я справлюсь сам(а)", Score: pts(1)},
			},
		},
		{
			ID:            "em-manage",
			Kind:          model.StepScale,
			Title:         "Оцените свою способность управлять этой эмоцией",
			Description:   "Насколько вы чувствуете контроль, а не она контролирует вас?",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Эмоция управляет мной", Max: "Я управляю эмоцией"},
			ScoreCategory: "regulation",
		},
		{
			ID:            "em-desired",
			Kind:          model.StepSingleChoice,
			Title:         "Что бы вы хотели чувствовать вместо этого?",
			Description:   "Выбор желаемого состояния — первый шаг к нему.",
			ScoreCategory: "awareness",
			Options: []model.Option{
				{ID: "em-d-calm", Label: "Спокойствие и равновесие", Score: pts(3)},
				{ID: "em-d-joy", Label: "Радость и лёгкость", Score: pts(3)},
				{ID: "em-d-confidence", Label: "Уверенность и силу", Score: pts(3)},
				{ID: "em-d-clarity", Label: "Ясность и понимание", Score: pts(4)},
				{ID: "em-d-connection", Label: "Близость и тепло", Score: pts(3)},
				{ID: "em-d-same", Label: "Меня устраивает то, что я чувствую", Score: pts(5)},
			},
		},
		{
			ID:          "em-step",
			Kind:        model.StepTextInput,
			Title:       "Один маленький шаг к желаемому состоянию",
			Description: "Что вы можете сделать прямо сейчас или в ближайший час, чтобы сдвинуться к нужному состоянию?",
			Placeholder: "Например: выйти на 10 минут прогуляться...",
		},
		{
			ID:    "em-info",
			Kind:  model.StepInfo,
			Title: "Вы уже работаете с эмоциями",
			Description: "Вы только что назвали эмоцию, нашли её в теле, определили триггер и выбрали способ " +
				"регуляции. Это и есть эмоциональный интеллект в действии. Каждый раз, проходя этот тренажёр, " +
				"вы укрепляете связь с собой. Со временем вы начнёте замечать паттерны — и реагировать осознанно, а не на автопилоте.",
		},
		{
			ID:    "em-result",
			Kind:  model.StepResult,
			Title: "Ваш результат",
		},
	},
}
