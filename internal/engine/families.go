package engine

import "pddtools/internal/scenario"

// resultSpecs holds the declarative calculator for each trainer.
var resultSpecs = map[string]*ResultSpec{
	scenario.ConsciousChoice:     consciousChoiceResult,
	scenario.EmotionsInAction:    emotionsResult,
	scenario.AntiProcrastination: antiProcrastinationResult,
	scenario.SelfEsteem:          selfEsteemResult,
	scenario.MoneyAnxiety:        moneyAnxietyResult,
}

// ResultSpecFor returns the result calculator for a trainer, or nil
// when the trainer has no calculator configured.
func ResultSpecFor(trainerID string) *ResultSpec {
	return resultSpecs[trainerID]
}

var consciousChoiceResult = &ResultSpec{
	TrainerID: scenario.ConsciousChoice,
	Positive:  []string{"clarity", "values"},
	Negative:  []string{"fear"},
	HighMin:   25,
	MediumMin: 15,
	Tiers: [3]ResultTier{
		{
			Level:   LevelHigh,
			Title:   "Высокая осознанность выбора",
			Summary: "Вы хорошо понимаете свои ценности и умеете принимать взвешенные решения. Страхи не управляют вашим выбором.",
		},
		{
			Level:   LevelMedium,
			Title:   "Растущая осознанность",
			Summary: "Вы на верном пути. Иногда сомнения и страхи влияют на решения, но вы учитесь их замечать.",
		},
		{
			Level:   LevelDeveloping,
			Title:   "Начало осознанного пути",
			Summary: "Вам свойственно сомневаться в решениях. Это нормально, каждый проход тренажёра укрепляет навык.",
		},
	},
	Rules: []RecommendRule{
		{Category: "fear", Threshold: 10, Text: "Попробуйте записать свои страхи — на бумаге они теряют силу."},
		{Category: "clarity", Threshold: 10, Below: true, Text: "Перед важным решением выделите 10 минут на письменный разбор «за» и «против»."},
		{Category: "values", Threshold: 8, Below: true, Text: "Составьте список 5 главных ценностей — он станет вашим компасом."},
	},
	Insights: []CategoryInsight{
		{Category: "clarity", Label: "Ясность мышления"},
		{Category: "values", Label: "Опора на ценности"},
		{Category: "fear", Label: "Влияние страхов"},
	},
	Closing: "Повторите тренажёр через неделю, чтобы отследить динамику.",
	NextActions: []string{
		"Записать топ-3 решения на этой неделе",
		"Вернуться к тренажёру через 7 дней",
	},
}

var emotionsResult = &ResultSpec{
	TrainerID: scenario.EmotionsInAction,
	Positive:  []string{"awareness", "regulation"},
	Negative:  []string{"triggers"},
	HighMin:   24,
	MediumMin: 14,
	Tiers: [3]ResultTier{
		{
			Level:   LevelHigh,
			Title:   "Зрелая саморегуляция",
			Summary: "Вы хорошо управляете эмоциями. Импульсивные реакции редки, вы осознанно выбираете свои действия.",
		},
		{
			Level:   LevelMedium,
			Title:   "Средний уровень осознанности",
			Summary: "Вы на пути к осознанности. Иногда эмоции берут верх, но вы учитесь замечать паттерны.",
		},
		{
			Level:   LevelDeveloping,
			Title:   "Эмоции управляют",
			Summary: "Сейчас эмоции сильно влияют на ваши решения. Каждое прохождение тренажёра — шаг к осознанности.",
		},
	},
	Rules: []RecommendRule{
		{Category: "triggers", Threshold: 8, Text: "Попробуйте технику «пауза 5 секунд» перед реакцией — она снижает импульсивность."},
		{Category: "awareness", Threshold: 8, Below: true, Text: "Ведите краткий дневник эмоций: 3 раза в день фиксируйте, что чувствуете и где в теле."},
		{Category: "regulation", Threshold: 8, Below: true, Text: "Заранее выбирайте стратегию на случай сильных эмоций — это тренирует саморегуляцию."},
	},
	Insights: []CategoryInsight{
		{Category: "awareness", Label: "Осознавание эмоций"},
		{Category: "regulation", Label: "Саморегуляция"},
		{Category: "triggers", Label: "Сила триггеров"},
	},
	Closing: "Повторяйте тренажёр регулярно — система покажет ваши эмоциональные паттерны.",
	NextActions: []string{
		"Выполнить план действия из тренажёра",
		"Повторить через 2–3 дня для отслеживания паттернов",
	},
}

var antiProcrastinationResult = &ResultSpec{
	TrainerID: scenario.AntiProcrastination,
	Positive:  []string{"motivation", "action"},
	Negative:  []string{"resistance"},
	HighMin:   22,
	MediumMin: 12,
	Tiers: [3]ResultTier{
		{
			Level:   LevelHigh,
			Title:   "Человек действия",
			Summary: "Вы запустили работу и довели до результата. Сопротивление не помешало вам.",
		},
		{
			Level:   LevelMedium,
			Title:   "Формируется привычка",
			Summary: "Вы учитесь начинать через сопротивление. Каждый запуск укрепляет навык.",
		},
		{
			Level:   LevelDeveloping,
			Title:   "Нестабильный запуск",
			Summary: "Сопротивление пока сильнее. Но вы уже здесь — и это первый шаг.",
		},
	},
	Rules: []RecommendRule{
		{Category: "resistance", Threshold: 12, Text: "Высокий риск откладывания. Разбейте задачу на ещё более мелкие части."},
		{Category: "action", Threshold: 6, Below: true, Text: "Не страшно, что не доделали. Попробуйте завтра ещё меньший шаг."},
		{Category: "motivation", Threshold: 6, Below: true, Text: "Свяжите задачу с тем, что для вас действительно важно — мотивация растёт от смысла."},
	},
	Insights: []CategoryInsight{
		{Category: "motivation", Label: "Мотивация"},
		{Category: "action", Label: "Готовность к действию"},
		{Category: "resistance", Label: "Сопротивление"},
	},
	Closing: "Повторяйте тренажёр ежедневно — 3 дня подряд сформируют запуск, 21 день — привычку.",
	NextActions: []string{
		"Повторить завтра с той же или новой задачей",
		"Зафиксировать своё наблюдение из рефлексии",
	},
}

var selfEsteemResult = &ResultSpec{
	TrainerID: scenario.SelfEsteem,
	Positive:  []string{"self-worth", "boundaries"},
	Negative:  []string{"inner-critic"},
	HighMin:   24,
	MediumMin: 14,
	Tiers: [3]ResultTier{
		{
			Level:   LevelHigh,
			Title:   "Зрелая внутренняя устойчивость",
			Summary: "У вас крепкая внутренняя опора. Вы цените себя на основе фактов, а не чужого мнения.",
		},
		{
			Level:   LevelMedium,
			Title:   "Формируется опора",
			Summary: "Вы учитесь опираться на себя. Регулярная фиксация достижений укрепит фундамент.",
		},
		{
			Level:   LevelDeveloping,
			Title:   "Нестабильная самооценка",
			Summary: "Внешнее мнение ещё сильно влияет. Каждый день с тренажёром — шаг к устойчивости.",
		},
	},
	Rules: []RecommendRule{
		{Category: "inner-critic", Threshold: 10, Text: "Внутренний критик сейчас громкий. Попробуйте записать его фразы и ответить на них фактами."},
		{Category: "self-worth", Threshold: 8, Below: true, Text: "Фиксируйте даже мелкие достижения — они формируют фактическую опору."},
		{Category: "boundaries", Threshold: 6, Below: true, Text: "Потренируйте одно маленькое «нет» на этой неделе — границы укрепляются практикой."},
	},
	Insights: []CategoryInsight{
		{Category: "self-worth", Label: "Самоценность"},
		{Category: "boundaries", Label: "Границы"},
		{Category: "inner-critic", Label: "Внутренний критик"},
	},
	Closing: "Проходите тренажёр ежедневно — динамика покажет рост вашей внутренней опоры.",
	NextActions: []string{
		"Завтра снова зафиксировать 3+ достижения",
		"Замечать моменты зависимости от чужого мнения",
	},
}

var moneyAnxietyResult = &ResultSpec{
	TrainerID: scenario.MoneyAnxiety,
	Positive:  []string{"beliefs", "strategy"},
	Negative:  []string{"anxiety"},
	HighMin:   20,
	MediumMin: 12,
	Tiers: [3]ResultTier{
		{
			Level:   LevelHigh,
			Title:   "Устойчивое денежное мышление",
			Summary: "Вы управляете деньгами осознанно. Тревога не влияет на финансовые решения.",
		},
		{
			Level:   LevelMedium,
			Title:   "Формируется финансовая зрелость",
			Summary: "Вы на пути к финансовой устойчивости. Тревога иногда влияет на решения, но вы учитесь замечать это.",
		},
		{
			Level:   LevelDeveloping,
			Title:   "Тревога управляет деньгами",
			Summary: "Сейчас эмоции сильно влияют на финансовые решения. Каждое прохождение — шаг к устойчивости.",
		},
	},
	Rules: []RecommendRule{
		{Category: "anxiety", Threshold: 10, Text: "Тревога очень высока. Попробуйте разбить финансовое действие на ещё меньший шаг."},
		{Category: "strategy", Threshold: 6, Below: true, Text: "Рациональных действий пока мало. Начните с одного простого шага — считать расходы."},
		{Category: "beliefs", Threshold: 6, Below: true, Text: "Вы склонны обесценивать свою работу. Попробуйте сравнить цену с рынком."},
	},
	Insights: []CategoryInsight{
		{Category: "beliefs", Label: "Денежные установки"},
		{Category: "strategy", Label: "Рациональная стратегия"},
		{Category: "anxiety", Label: "Денежная тревога"},
	},
	Closing: "Повторяйте тренажёр регулярно — система покажет ваши денежные паттерны.",
	NextActions: []string{
		"Выполнить финансовый шаг из тренажёра в течение 48 часов",
		"Повторить тренажёр через 3–5 дней для отслеживания динамики",
	},
}
