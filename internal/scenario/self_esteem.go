package scenario

import "pddtools/internal/model"

var selfEsteemScenario = &model.Scenario{
	ID: SelfEsteem,
	Steps: []model.Step{
		{
			ID:    "se-intro",
			Kind:  model.StepIntro,
			Title: "Самооценка и внутренняя опора",
			Description: "Здоровая самооценка — это не думать о себе хорошо всё время. Это устойчивое ощущение " +
				"своей ценности, даже когда что-то не получается. В этом тренажёре вы исследуете внутреннего " +
				"критика, свои реальные достижения и личные границы. Отвечайте так, как чувствуете — честность " +
				"с собой и есть фундамент.",
		},
		{
			ID:            "se-rate",
			Kind:          model.StepScale,
			Title:         "Как бы вы оценили себя сегодня?",
			Description:   "Общее ощущение: насколько вы сейчас цените и уважаете себя?",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Совсем не ценю", Max: "Полностью ценю и уважаю"},
			ScoreCategory: "self-worth",
		},
		{
			ID:            "se-critic",
			Kind:          model.StepSingleChoice,
			Title:         "Что чаще всего говорит ваш внутренний критик?",
			Description:   "У каждого есть этот голос. Важно не избавиться от него, а научиться его замечать.",
			ScoreCategory: "inner-critic",
			Options: []model.Option{
				{ID: "se-cr-enough", Label: "Ты недостаточно хорош(а)", Score: pts(4)},
				{ID: "se-cr-fail", Label: "У тебя не получится", Score: pts(5)},
				{ID: "se-cr-deserve", Label: "Ты не заслуживаешь хорошего", Score: pts(5)},
				{ID: "se-cr-compare", Label: "Все вокруг лучше тебя", Score: pts(4)},
				{ID: "se-cr-harder", Label: "Надо стараться ещё сильнее", Score: pts(3)},
				{ID: "se-cr-judge", Label: "Тебя осудят, если узнают настоящего тебя", Score: pts(5)},
				{ID: "se-cr-quiet", Label: "Мой критик обычно молчит", Score: pts(1)},
			},
		},
		{
			ID:            "se-compare",
			Kind:          model.StepSingleChoice,
			Title:         "Как часто вы сравниваете себя с другими?",
			Description:   "Сравнение — один из главных разрушителей самооценки. Даже если мы понимаем это умом.",
			ScoreCategory: "inner-critic",
			Options: []model.Option{
				{ID: "se-cmp-always", Label: "Постоянно — почти в каждой ситуации", Score: pts(5)},
				{ID: "se-cmp-often", Label: "Часто — особенно в соцсетях", Score: pts(4)},
				{ID: "se-cmp-sometimes", Label: "Иногда — когда нервничаю или устаю", Score: pts(3)},
				{ID: "se-cmp-rarely", Label: "Редко — научился(лась) замечать это", Score: pts(2)},
				{ID: "se-cmp-never", Label: "Практически не сравниваю", Score: pts(1)},
			},
		},
		{
			ID:            "se-wins",
			Kind:          model.StepTextInput,
			Title:         "Назовите 3 вещи, которые вы хорошо сделали на этой неделе",
			Description:   "Не обязательно великие дела. Приготовили ужин? Вовремя сдали задачу? Поддержали друга? Это всё считается.",
			Placeholder:   "1. ...\n2. ...\n3. ...",
			ScoreCategory: "self-worth",
		},
		{
			ID:            "se-boundaries",
			Kind:          model.StepSingleChoice,
			Title:         "Можете ли вы сказать «нет», когда нужно?",
			Description:   "Умение отказывать — один из маркеров здоровой самооценки и личных границ.",
			ScoreCategory: "boundaries",
			Options: []model.Option{
				{ID: "se-bn-easy", Label: "Да, без проблем — если мне не подходит, я отказываю", Score: pts(5)},
				{ID: "se-bn-mostly", Label: "Чаще да, но иногда соглашаюсь из чувства вины", Score: pts(4)},
				{ID: "se-bn-hard", Label: "Сложно — боюсь обидеть или разочаровать", Score: pts(2)},
				{ID: "se-bn-cant", Label: "Почти всегда соглашаюсь, даже если не хочу", Score: pts(1)},
			},
		},
		{
			ID:            "se-self-first",
			Kind:          model.StepSingleChoice,
			Title:         "Когда вы в последний раз поставили себя на первое место?",
			Description:   "Забота о себе — не эгоизм, а необходимость. Вспомните, когда вы делали что-то именно для себя.",
			ScoreCategory: "boundaries",
			Options: []model.Option{
				{ID: "se-sf-today", Label: "Сегодня или вчера", Score: pts(5)},
				{ID: "se-sf-week", Label: "На этой неделе", Score: pts(4)},
				{ID: "se-sf-month", Label: "Где-то в этом месяце", Score: pts(2)},
				{ID: "se-sf-long", Label: "Давно — не помню когда", Score: pts(1)},
				{ID: "se-sf-never", Label: "Кажется, я всегда ставлю других выше", Score: pts(1)},
			},
		},
		{
			ID:          "se-believe",
			Kind:        model.StepTextInput,
			Title:       "Что изменилось бы, если бы вы по-настоящему поверили в себя?",
			Description: "Представьте: внутренний критик замолчал, сомнения ушли. Что бы вы сделали? Как бы себя чувствовали?",
			Placeholder: "Если бы я верил(а) в себя, я бы...",
		},
		{
			ID:            "se-compliments",
			Kind:          model.StepSingleChoice,
			Title:         "Как вы реагируете на комплименты?",
			Description:   "Способность принимать хорошее — важный маркер самооценки.",
			ScoreCategory: "self-worth",
			Options: []model.Option{
				{ID: "se-cm-accept", Label: "Принимаю с благодарностью и удовольствием", Score: pts(5)},
				{ID: "se-cm-awkward", Label: "Смущаюсь, но приятно", Score: pts(3)},
				{ID: "se-cm-deflect", Label: "Отмахиваюсь: «Да ладно, ничего особенного»", Score: pts(2)},
				{ID: "se-cm-doubt", Label: "Не верю — думаю, что льстят или вежливничают", Score: pts(1)},
				{ID: "se-cm-guilt", Label: "Чувствую неловкость и даже вину", Score: pts(1)},
			},
		},
		{
			ID:            "se-proud",
			Kind:          model.StepTextInput,
			Title:         "Одна вещь, которой вы гордитесь в себе",
			Description:   "Качество, поступок, привычка — что-то, за что вы можете сказать себе «молодец».",
			Placeholder:   "Я горжусь тем, что...",
			ScoreCategory: "self-worth",
		},
		{
			ID:            "se-stability",
			Kind:          model.StepScale,
			Title:         "Оцените свою внутреннюю устойчивость прямо сейчас",
			Description:   "Насколько крепко вы стоите на ногах, когда внешний мир штормит?",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Шатает от любого ветра", Max: "Стою крепко"},
			ScoreCategory: "self-worth",
		},
		{
			ID:    "se-info",
			Kind:  model.StepInfo,
			Title: "Вы заслуживаете хорошего отношения к себе",
			Description: "Вы только что честно посмотрели на свою самооценку — и это требует мужества. " +
				"Внутренний критик не исчезнет за одну сессию, но каждый раз, когда вы замечаете его голос, " +
				"он теряет часть силы. Продолжайте: записывайте маленькие победы, тренируйте «нет» и " +
				"напоминайте себе — вы достаточны уже сейчас, не «когда-нибудь потом».",
		},
		{
			ID:    "se-result",
			Kind:  model.StepResult,
			Title: "Ваш результат",
		},
	},
}
