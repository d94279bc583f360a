package scenario

import "pddtools/internal/model"

var consciousChoiceScenario = &model.Scenario{
	ID: ConsciousChoice,
	Steps: []model.Step{
		{
			ID:    "cc-intro",
			Kind:  model.StepIntro,
			Title: "Осознанный выбор",
			Description: "Этот тренажер поможет вам разобраться в текущей ситуации выбора. " +
				"Вы исследуете свои ценности, страхи и интуицию — и подойдёте к решению осознанно, " +
				"а не на автопилоте. Отвечайте честно — здесь нет правильных и неправильных ответов.",
		},
		{
			ID:          "cc-decision",
			Kind:        model.StepTextInput,
			Title:       "Какое решение вы сейчас обдумываете?",
			Description: "Опишите ситуацию выбора, которая вас занимает. Это может быть что угодно — от смены работы до бытового решения.",
			Placeholder: "Например: думаю, стоит ли менять работу...",
		},
		{
			ID:            "cc-clarity",
			Kind:          model.StepScale,
			Title:         "Насколько вам ясна ситуация?",
			Description:   "Оцените, насколько хорошо вы понимаете все аспекты этого выбора: последствия, варианты, ограничения.",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Полный туман", Max: "Кристальная ясность"},
			ScoreCategory: "clarity",
		},
		{
			ID:            "cc-values",
			Kind:          model.StepMultipleChoice,
			Title:         "Какие ценности важны для вас в этом решении?",
			Description:   "Выберите все, что откликается. Это ваш внутренний компас.",
			ScoreCategory: "values",
			Options: []model.Option{
				{ID: "cc-v-freedom", Label: "Свобода и независимость", Score: pts(2), Tags: []string{"autonomy"}},
				{ID: "cc-v-security", Label: "Стабильность и безопасность", Score: pts(2), Tags: []string{"security"}},
				{ID: "cc-v-growth", Label: "Развитие и рост", Score: pts(2), Tags: []string{"growth"}},
				{ID: "cc-v-family", Label: "Семья и близкие", Score: pts(2), Tags: []string{"family"}},
				{ID: "cc-v-creativity", Label: "Творчество и самовыражение", Score: pts(2), Tags: []string{"creativity"}},
				{ID: "cc-v-money", Label: "Деньги и материальное благополучие", Score: pts(2), Tags: []string{"money"}},
				{ID: "cc-v-health", Label: "Здоровье и энергия", Score: pts(2), Tags: []string{"health"}},
				{ID: "cc-v-recognition", Label: "Признание и уважение", Score: pts(1), Tags: []string{"recognition"}},
			},
		},
		{
			ID:            "cc-fear",
			Kind:          model.StepSingleChoice,
			Title:         "Что пугает вас больше всего в этом выборе?",
			Description:   "Выберите главный страх — тот, который сильнее остальных тормозит решение.",
			ScoreCategory: "fear",
			Options: []model.Option{
				{ID: "cc-f-mistake", Label: "Совершить ошибку и пожалеть", Score: pts(4)},
				{ID: "cc-f-money", Label: "Потерять деньги или доход", Score: pts(3)},
				{ID: "cc-f-disappoint", Label: "Разочаровать близких или коллег", Score: pts(4)},
				{ID: "cc-f-miss", Label: "Упустить лучшую возможность", Score: pts(3)},
				{ID: "cc-f-change", Label: "Сами перемены — выход из зоны комфорта", Score: pts(5)},
				{ID: "cc-f-none", Label: "Ничего особенно не пугает", Score: pts(1)},
			},
		},
		{
			ID:            "cc-others",
			Kind:          model.StepScale,
			Title:         "Насколько мнение окружающих влияет на ваш выбор?",
			Description:   "Оцените честно: вы выбираете для себя — или чтобы соответствовать ожиданиям?",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Решаю сам(а)", Max: "Сильно завишу от мнения"},
			ScoreCategory: "fear",
		},
		{
			ID:          "cc-intuition",
			Kind:        model.StepTextInput,
			Title:       "Какой вариант кажется правильным интуитивно?",
			Description: "Не думайте долго. Что первое приходит на ум, когда вы представляете, что решение уже принято?",
			Placeholder: "Моя интуиция говорит...",
		},
		{
			ID:          "cc-friend",
			Kind:        model.StepTextInput,
			Title:       "Что бы вы посоветовали другу в такой же ситуации?",
			Description: "Представьте, что близкий человек пришёл с точно такой же проблемой выбора. Что бы вы ему сказали?",
			Placeholder: "Я бы сказал(а) другу...",
		},
		{
			ID:          "cc-no-fear",
			Kind:        model.StepTextInput,
			Title:       "Если бы страха не существовало — что бы вы выбрали?",
			Description: "Уберите из уравнения все «а вдруг». Что остаётся, когда страх исчезает?",
			Placeholder: "Без страха я бы выбрал(а)...",
		},
		{
			ID:            "cc-readiness",
			Kind:          model.StepScale,
			Title:         "Насколько вы готовы принять решение прямо сейчас?",
			Description:   "Оцените свою внутреннюю готовность. Не торопитесь — иногда нужно ещё время.",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Совсем не готов(а)", Max: "Полностью готов(а)"},
			ScoreCategory: "clarity",
		},
		{
			ID:    "cc-info",
			Kind:  model.StepInfo,
			Title: "Вы проделали важную работу",
			Description: "Вы только что честно посмотрели на свой выбор с разных сторон: ценности, страхи, " +
				"интуиция, взгляд со стороны. Даже если решение ещё не принято — осознанность уже изменила " +
				"ваше отношение к нему. Настоящий выбор — это не отсутствие сомнений, а готовность действовать, несмотря на них.",
		},
		{
			ID:    "cc-result",
			Kind:  model.StepResult,
			Title: "Ваш результат",
		},
	},
}
