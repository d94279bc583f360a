package scenario

import "pddtools/internal/model"

var antiProcrastinationScenario = &model.Scenario{
	ID: AntiProcrastination,
	Steps: []model.Step{
		{
			ID:    "ap-intro",
			Kind:  model.StepIntro,
			Title: "Антипрокрастинация. Малый шаг",
			Description: "Прокрастинация — это не лень. Это защитная реакция на страх, перегрузку или неясность. " +
				"Этот тренажёр поможет разобрать конкретную задачу, которую вы откладываете, и найти тот самый " +
				"первый маленький шаг. Метод «2 минуты» работает: начните — и мозг включится.",
		},
		{
			ID:          "ap-task",
			Kind:        model.StepTextInput,
			Title:       "Какую задачу вы сейчас откладываете?",
			Description: "Выберите одну конкретную задачу. Не самую глобальную — ту, которая прямо сейчас вызывает внутреннее сопротивление.",
			Placeholder: "Например: начать писать отчёт, записаться к врачу...",
		},
		{
			ID:            "ap-why",
			Kind:          model.StepSingleChoice,
			Title:         "Почему эта задача важна для вас?",
			Description:   "Мотивация «надо» слабее мотивации «хочу, потому что...». Найдите свою причину.",
			ScoreCategory: "motivation",
			Options: []model.Option{
				{ID: "ap-w-goal", Label: "Приближает к важной цели", Score: pts(5)},
				{ID: "ap-w-relief", Label: "После неё станет легче", Score: pts(4)},
				{ID: "ap-w-people", Label: "Это важно для людей, которые мне дороги", Score: pts(3)},
				{ID: "ap-w-money", Label: "Связана с доходом или карьерой", Score: pts(4)},
				{ID: "ap-w-health", Label: "Касается моего здоровья", Score: pts(4)},
				{ID: "ap-w-must", Label: "Честно — просто «надо» и всё", Score: pts(1)},
			},
		},
		{
			ID:            "ap-blocker",
			Kind:          model.StepSingleChoice,
			Title:         "Что мешает вам начать?",
			Description:   "Определить барьер — значит на 50% его преодолеть.",
			ScoreCategory: "resistance",
			Options: []model.Option{
				{ID: "ap-b-big", Label: "Задача слишком большая и непонятно, с чего начать", Score: pts(4)},
				{ID: "ap-b-boring", Label: "Скучно и неинтересно", Score: pts(3)},
				{ID: "ap-b-scary", Label: "Страшно: а вдруг не получится?", Score: pts(5)},
				{ID: "ap-b-unclear", Label: "Неясно, как именно это делать", Score: pts(4)},
				{ID: "ap-b-perfect", Label: "Хочу сделать идеально — и поэтому не начинаю", Score: pts(5)},
				{ID: "ap-b-tired", Label: "Нет сил, устал(а)", Score: pts(3)},
			},
		},
		{
			ID:            "ap-duration",
			Kind:          model.StepSingleChoice,
			Title:         "Как давно вы откладываете эту задачу?",
			Description:   "Чем дольше откладываем — тем больше тревога. Но и начать никогда не поздно.",
			ScoreCategory: "resistance",
			Options: []model.Option{
				{ID: "ap-d-today", Label: "Только сегодня", Score: pts(1)},
				{ID: "ap-d-days", Label: "Несколько дней", Score: pts(2)},
				{ID: "ap-d-week", Label: "Около недели", Score: pts(3)},
				{ID: "ap-d-weeks", Label: "Несколько недель", Score: pts(4)},
				{ID: "ap-d-month", Label: "Месяц и более", Score: pts(5)},
			},
		},
		{
			ID:            "ap-two-min",
			Kind:          model.StepSingleChoice,
			Title:         "Можете ли вы заниматься этим всего 2 минуты?",
			Description:   "Не час, не полдня — ровно 2 минуты. Откройте файл, напишите первое предложение, наберите номер.",
			ScoreCategory: "action",
			Options: []model.Option{
				{ID: "ap-2m-yes", Label: "Да, 2 минуты — это точно могу", Score: pts(5)},
				{ID: "ap-2m-maybe", Label: "Наверное, если заставлю себя", Score: pts(3)},
				{ID: "ap-2m-hard", Label: "Даже 2 минуты кажутся сложными", Score: pts(1)},
			},
		},
		{
			ID:          "ap-smallest",
			Kind:        model.StepTextInput,
			Title:       "Какой самый маленький шаг вы можете сделать?",
			Description: "Подумайте: что бы вы сделали, если бы на задачу было только 2 минуты? Именно это и запишите.",
			Placeholder: "Например: открыть документ и написать заголовок...",
		},
		{
			ID:            "ap-after",
			Kind:          model.StepSingleChoice,
			Title:         "Что вы почувствуете, когда сделаете хотя бы этот шаг?",
			Description:   "Представьте: шаг сделан. Что внутри?",
			ScoreCategory: "motivation",
			Options: []model.Option{
				{ID: "ap-a-relief", Label: "Облегчение — груз свалился", Score: pts(5)},
				{ID: "ap-a-pride", Label: "Гордость — я смог(ла)!", Score: pts(5)},
				{ID: "ap-a-energy", Label: "Прилив энергии — хочется продолжить", Score: pts(4)},
				{ID: "ap-a-calm", Label: "Спокойствие — хотя бы начал(а)", Score: pts(3)},
				{ID: "ap-a-nothing", Label: "Ничего особенного", Score: pts(1)},
			},
		},
		{
			ID:            "ap-when",
			Kind:          model.StepSingleChoice,
			Title:         "Когда именно вы сделаете этот маленький шаг?",
			Description:   "Конкретное время повышает вероятность действия в 3 раза. Выберите момент.",
			ScoreCategory: "action",
			Options: []model.Option{
				{ID: "ap-w-now", Label: "Сразу после этого тренажёра", Score: pts(5)},
				{ID: "ap-w-hour", Label: "В ближайший час", Score: pts(4)},
				{ID: "ap-w-today", Label: "Сегодня вечером", Score: pts(3)},
				{ID: "ap-w-tomorrow", Label: "Завтра утром", Score: pts(2)},
				{ID: "ap-w-unsure", Label: "Пока не знаю, но скоро", Score: pts(1)},
			},
		},
		{
			ID:            "ap-distractors",
			Kind:          model.StepMultipleChoice,
			Title:         "Что может вас отвлечь?",
			Description:   "Знать врага в лицо — значит быть готовым. Выберите свои главные отвлекатели.",
			ScoreCategory: "resistance",
			Options: []model.Option{
				{ID: "ap-dist-phone", Label: "Телефон и соцсети", Score: pts(2)},
				{ID: "ap-dist-people", Label: "Просьбы и разговоры с людьми", Score: pts(1)},
				{ID: "ap-dist-food", Label: "Желание поесть/попить чай", Score: pts(1)},
				{ID: "ap-dist-other", Label: "Другие «срочные» задачи", Score: pts(2)},
				{ID: "ap-dist-mood", Label: "Плохое настроение или усталость", Score: pts(2)},
				{ID: "ap-dist-nothing", Label: "Я смогу сфокусироваться", Score: pts(0)},
			},
		},
		{
			ID:            "ap-confidence",
			Kind:          model.StepScale,
			Title:         "Насколько вы уверены, что начнёте?",
			Description:   "Будьте честны — даже 3 из 10 уже лучше, чем не думать об этом.",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Почти не верю", Max: "Начну точно"},
			ScoreCategory: "action",
		},
		{
			ID:    "ap-result",
			Kind:  model.StepResult,
			Title: "Ваш результат",
		},
	},
}
