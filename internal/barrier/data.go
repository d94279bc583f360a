// Package barrier implements the break-point chat bot: a guided
// dialogue that maps a user's attempt at a goal into steps with
// belief (x) and anxiety (y) ratings, finds where the attempt broke
// and classifies the psychological profile behind it.
package barrier

import "pddtools/internal/model"

// Contexts the user can pick the situation from.
var Contexts = []string{
	"Новая работа",
	"Попытка сменить профессию",
	"Запуск проекта",
	"Обучение новому",
	"Публичное выступление",
	"Попытка начать бизнес",
	"Повышение",
	"Творческий проект",
	"Спорт / дисциплина",
	"Отношения",
	"Свой вариант",
}

// Strengths offered for the main and additional strength picks.
var Strengths = []string{
	"Ответственность",
	"Упорство",
	"Креативность",
	"Аналитическое мышление",
	"Общительность",
	"Самостоятельность",
	"Быстрое обучение",
	"Организованность",
	"Энергичность",
	"Стратегическое мышление",
	"Дисциплина",
	"Смелость",
	"Инициативность",
	"Эмпатия",
	"Стрессоустойчивость",
	"Свой вариант",
}

// Weaknesses offered for the main weakness pick.
var Weaknesses = []string{
	"Страх ошибки",
	"Страх осуждения",
	"Страх нестабильности",
	"Прокрастинация",
	"Перфекционизм",
	"Синдром самозванца",
	"Быстрое выгорание",
	"Тревожность",
	"Неуверенность",
	"Потеря мотивации",
	"Страх отказа",
	"Страх критики",
	"Самосаботаж",
	"Импульсивность",
	"Усталость",
	"Свой вариант",
}

// ProfileTexts is the user-facing copy for each detected profile.
var ProfileTexts = map[string]model.ProfileText{
	ProfileAmbitiousAnxious: {
		Title:       "Амбициозный, но тревожный",
		Description: "Ты двигаешься смело и видишь высокие цели — но внутреннее напряжение растёт вместе с прогрессом. Тебе важно научиться выдерживать собственный рост.",
	},
	ProfileLowBelief: {
		Title:       "Сниженная вера в успех",
		Description: "С самого начала ты не верил в результат. Это не слабость — это сигнал: нужна точка опоры ещё до первого шага.",
	},
	ProfileFearOfEvaluation: {
		Title:       "Страх оценки",
		Description: "Тревога резко скачет — обычно в моменты, когда тебя могут увидеть или оценить. Это классический триггер срыва.",
	},
	ProfileChronicAnxiety: {
		Title:       "Хроническая тревожность",
		Description: "Напряжение нарастало постепенно и ровно. Не один взрыв — а долгий фон, который в итоге забрал ресурс.",
	},
	ProfileBalanced: {
		Title:       "Сбалансированный тип",
		Description: "Ты двигался устойчиво. Срыв произошёл не из-за системной проблемы, а из-за конкретной точки. Это легче всего исправить.",
	},
}
