package journal

import "pddtools/internal/model"

// DefaultDiaryTemplates is the built-in diary configuration used
// when no admin override is stored.
func DefaultDiaryTemplates() *DiaryTemplates {
	return &DiaryTemplates{
		Steps: []DiaryStep{
			{Key: "situation", Question: "Что произошло сегодня? Опиши ситуацию, которая тебя зацепила."},
			{Key: "thoughts", Question: "Какие мысли крутились в голове в этот момент?"},
			{Key: "emotions", Question: "Что ты чувствовал? Назови эмоции своими словами."},
			{Key: "body", Question: "Как реагировало тело? Напряжение, тяжесть, дрожь?"},
			{Key: "action", Question: "Что ты сделал или не сделал в итоге?"},
		},
		EmotionDict: map[string][]string{
			"anxiety": {"тревога", "тревожно", "страх", "боюсь", "паника", "нервничаю", "переживаю", "волнуюсь", "беспокоюсь"},
			"anger":   {"злость", "злюсь", "раздражение", "бесит", "агрессия", "ненавижу", "обида", "обидно"},
			"sadness": {"грусть", "грустно", "печаль", "тоска", "пустота", "одиночество", "одинок", "плакал", "плачу"},
			"fatigue": {"устал", "усталость", "нет сил", "выгорание", "выдохся", "истощён", "не могу больше"},
			"guilt":   {"вина", "виноват", "стыдно", "стыд", "должен был", "подвёл"},
		},
		PatternRules: map[string][]string{
			"catastrophizing": {"всё пропало", "катастрофа", "всё рухнет", "конец", "ужасно"},
			"self-blame":      {"я виноват", "сам виноват", "это из-за меня", "я всё испортил"},
			"black-white":     {"всегда", "никогда", "все", "никто", "всё или ничего"},
			"mind-reading":    {"он думает", "она считает", "все думают", "обо мне подумают"},
			"should":          {"я должен", "я обязан", "надо было", "нельзя так"},
		},
		EmotionLabels: map[string]string{
			"anxiety": "Тревога",
			"anger":   "Злость",
			"sadness": "Грусть",
			"fatigue": "Усталость",
			"guilt":   "Вина",
		},
		PatternLabels: map[string]string{
			"catastrophizing": "Катастрофизация",
			"self-blame":      "Самообвинение",
			"black-white":     "Чёрно-белое мышление",
			"mind-reading":    "Чтение мыслей",
			"should":          "Долженствование",
		},
		Summary:        "Сегодня тебя зацепила ситуация: «{situation}».",
		EmotionsFound:  "В записи заметны эмоции: {emotion_list}.",
		EmotionsNone:   "Явных эмоциональных маркеров в записи нет — возможно, сегодня было спокойнее.",
		PatternsNew:    "Похоже, включались паттерны мышления: {pattern_list}.",
		PatternsRepeat: "Этот паттерн повторяется не первый раз — стоит понаблюдать за ним отдельно.",
		DynamicUp:      "Эмоциональная интенсивность выше, чем в прошлой записи. Будь к себе бережнее.",
		DynamicDown:    "Интенсивность ниже, чем в прошлый раз — хорошая динамика.",
		DynamicSame:    "Интенсивность на уровне прошлой записи.",
		Questions: []string{
			"Что в этой ситуации зависело от тебя, а что нет?",
			"Как бы ты поддержал друга, окажись он на твоём месте?",
			"Что самое худшее могло случиться — и насколько это вероятно?",
			"Какая твоя потребность стояла за этой эмоцией?",
			"Что ты можешь сделать завтра иначе?",
			"Какой маленький шаг снизил бы напряжение прямо сейчас?",
		},
		StartMessage: "Привет! Это дневник самонаблюдения. Несколько вопросов — и разберём, что произошло.",
	}
}

// DefaultProgressTemplates is the built-in progress check-in
// configuration used when no admin override is stored.
func DefaultProgressTemplates() *ProgressTemplates {
	return &ProgressTemplates{
		Metrics: []model.MetricDef{
			{Key: "energy", Label: "Энергия"},
			{Key: "confidence", Label: "Уверенность"},
			{Key: "clarity", Label: "Ясность целей"},
			{Key: "discipline", Label: "Дисциплина"},
			{Key: "mood", Label: "Настроение"},
		},
		FocusOptions: []string{
			"Работа и карьера",
			"Финансы",
			"Отношения",
			"Здоровье и энергия",
			"Личные проекты",
			"Обучение",
		},
		DeltaLabels: DeltaLabels{
			StrongUp:   "заметный рост",
			MildUp:     "небольшой рост",
			None:       "без изменений",
			MildDown:   "небольшое снижение",
			StrongDown: "заметное снижение",
		},
		DynamicPositive: "Большинство показателей выросло. Ты движешься вперёд — зафиксируй, что сработало.",
		DynamicNegative: "Большинство показателей снизилось. Это не откат, а сигнал пересмотреть нагрузку.",
		DynamicStable:   "Показатели держатся на одном уровне. Стабильность — тоже результат.",
		FocusSame:       "Фокус не изменился — ты последовательно держишь направление.",
		FocusChanged:    "Фокус сместился. Проверь: это осознанный выбор или реакция на обстоятельства?",
		Conclusions: []string{
			"Продолжай отмечаться регулярно — динамика видна на дистанции.",
			"Сравни эту запись с ощущениями недельной давности: что изменилось на самом деле?",
			"Для более точного анализа нужно минимум три записи. Возвращайся завтра.",
		},
		FirstEntry:   "Первая запись сделана! Теперь есть точка отсчёта для будущих сравнений.",
		StartMessage: "Привет! Это трекер прогресса. Оценим несколько показателей и сравним с прошлым разом.",
	}
}
