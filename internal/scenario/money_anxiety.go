package scenario

import "pddtools/internal/model"

var moneyAnxietyScenario = &model.Scenario{
	ID: MoneyAnxiety,
	Steps: []model.Step{
		{
			ID:    "ma-intro",
			Kind:  model.StepIntro,
			Title: "Деньги без тревоги",
			Description: "Отношение к деньгам формируется в детстве и часто работает на автопилоте: установки " +
				"родителей, страхи, привычки. Этот тренажёр поможет осознать свои денежные паттерны, снизить " +
				"тревогу и начать выстраивать здоровую финансовую стратегию. Без осуждения — только честный взгляд.",
		},
		{
			ID:            "ma-childhood",
			Kind:          model.StepSingleChoice,
			Title:         "Какую фразу о деньгах вы чаще всего слышали в детстве?",
			Description:   "Родительские установки формируют наш денежный сценарий. Вспомните, что звучало дома.",
			ScoreCategory: "beliefs",
			Options: []model.Option{
				{ID: "ma-ch-evil", Label: "Деньги — это зло, от них все проблемы", Score: pts(1), Tags: []string{"distrust"}},
				{ID: "ma-ch-trees", Label: "Деньги на деревьях не растут", Score: pts(2), Tags: []string{"scarcity"}},
				{ID: "ma-ch-rich-bad", Label: "Богатые — плохие люди", Score: pts(1), Tags: []string{"money-guilt"}},
				{ID: "ma-ch-hard", Label: "Деньги надо зарабатывать тяжёлым трудом", Score: pts(2), Tags: []string{"overwork"}},
				{ID: "ma-ch-problems", Label: "Большие деньги — большие проблемы", Score: pts(1), Tags: []string{"money-fear"}},
				{ID: "ma-ch-afford", Label: "Мы не можем себе это позволить", Score: pts(2), Tags: []string{"scarcity"}},
				{ID: "ma-ch-positive", Label: "Скорее позитивное: деньги — это возможности", Score: pts(5), Tags: []string{"positive"}},
			},
		},
		{
			ID:            "ma-anxiety-level",
			Kind:          model.StepScale,
			Title:         "Оцените уровень вашей финансовой тревоги",
			Description:   "Как сильно деньги (или их нехватка) влияют на ваше ежедневное эмоциональное состояние?",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Спокоен(на) насчёт денег", Max: "Постоянная тревога"},
			ScoreCategory: "anxiety",
		},
		{
			ID:            "ma-fears",
			Kind:          model.StepMultipleChoice,
			Title:         "Что пугает вас в отношении денег?",
			Description:   "Выберите все страхи, которые откликаются. Осознание — первый шаг к свободе от них.",
			ScoreCategory: "anxiety",
			Options: []model.Option{
				{ID: "ma-f-notenough", Label: "Что денег не хватит на жизнь", Score: pts(2)},
				{ID: "ma-f-lose", Label: "Что потеряю то, что есть", Score: pts(2)},
				{ID: "ma-f-toomuch", Label: "Что заработаю «слишком много» и изменюсь", Score: pts(1)},
				{ID: "ma-f-ask", Label: "Просить деньги (зарплату, оплату, долг)", Score: pts(2)},
				{ID: "ma-f-spend", Label: "Тратить на себя — чувство вины", Score: pts(2)},
				{ID: "ma-f-judged", Label: "Что меня осудят за мои доходы или расходы", Score: pts(1)},
			},
		},
		{
			ID:            "ma-rational",
			Kind:          model.StepSingleChoice,
			Title:         "Какой рациональный шаг здесь помог бы вам больше всего?",
			Description:   "Варианты подобраны под вашу денежную установку. Выберите самый реальный для вас.",
			ScoreCategory: "strategy",
			Dynamic:       true,
		},
		{
			ID:            "ma-expenses",
			Kind:          model.StepSingleChoice,
			Title:         "Знаете ли вы свои ежемесячные расходы?",
			Description:   "Финансовая ясность — основа спокойствия. Знание цифр снижает тревогу.",
			ScoreCategory: "strategy",
			Options: []model.Option{
				{ID: "ma-e-exact", Label: "Да, веду учёт — знаю до рубля", Score: pts(5)},
				{ID: "ma-e-approx", Label: "Примерно знаю основные категории", Score: pts(4)},
				{ID: "ma-e-rough", Label: "Имею общее представление", Score: pts(2)},
				{ID: "ma-e-no", Label: "Нет, стараюсь не думать об этом", Score: pts(1)},
			},
		},
		{
			ID:            "ma-spending",
			Kind:          model.StepSingleChoice,
			Title:         "Что вы чувствуете, когда тратите деньги на себя?",
			Description:   "Не на «нужное», а именно на удовольствие, отдых, подарок себе.",
			ScoreCategory: "beliefs",
			Options: []model.Option{
				{ID: "ma-sp-joy", Label: "Удовольствие и радость — заслужил(а)", Score: pts(5)},
				{ID: "ma-sp-ok", Label: "Нормально, если в рамках бюджета", Score: pts(4)},
				{ID: "ma-sp-guilt", Label: "Чувство вины — лучше бы отложил(а)", Score: pts(2)},
				{ID: "ma-sp-anxiety", Label: "Тревогу — а вдруг потом не хватит", Score: pts(1)},
				{ID: "ma-sp-avoid", Label: "Стараюсь вообще не тратить на себя", Score: pts(1)},
			},
		},
		{
			ID:            "ma-earning",
			Kind:          model.StepSingleChoice,
			Title:         "Как вы относитесь к зарабатыванию денег?",
			Description:   "Убеждения о заработке определяют ваш финансовый потолок.",
			ScoreCategory: "beliefs",
			Options: []model.Option{
				{ID: "ma-ea-love", Label: "Мне нравится зарабатывать, это драйв и энергия", Score: pts(5)},
				{ID: "ma-ea-normal", Label: "Нормальная часть жизни, без сильных эмоций", Score: pts(4)},
				{ID: "ma-ea-necessary", Label: "Необходимость — работаю ради денег, не ради удовольствия", Score: pts(2)},
				{ID: "ma-ea-hard", Label: "Тяжёлый труд, зарабатываю с усилием", Score: pts(2)},
				{ID: "ma-ea-shame", Label: "Неловко просить за свою работу достойную оплату", Score: pts(1)},
			},
		},
		{
			ID:            "ma-goal",
			Kind:          model.StepSingleChoice,
			Title:         "Есть ли у вас финансовая цель?",
			Description:   "Цель создаёт направление. Без неё деньги просто «текут».",
			ScoreCategory: "strategy",
			Options: []model.Option{
				{ID: "ma-g-clear", Label: "Да, конкретная цель с суммой и сроком", Score: pts(5)},
				{ID: "ma-g-vague", Label: "Есть общее понимание, но без конкретики", Score: pts(3)},
				{ID: "ma-g-dream", Label: "Скорее мечта, чем план", Score: pts(2)},
				{ID: "ma-g-no", Label: "Нет — живу от зарплаты до зарплаты", Score: pts(1)},
			},
		},
		{
			ID:          "ma-double",
			Kind:        model.StepTextInput,
			Title:       "Что изменится, если ваш доход вырастет вдвое?",
			Description: "Представьте: завтра вы зарабатываете в 2 раза больше. Что конкретно изменится в вашей жизни?",
			Placeholder: "Если мой доход удвоится, я...",
		},
		{
			ID:            "ma-planning",
			Kind:          model.StepScale,
			Title:         "Оцените свои навыки финансового планирования",
			Description:   "Бюджет, подушка безопасности, накопления — насколько уверенно вы ими управляете?",
			ScaleMin:      1,
			ScaleMax:      10,
			ScaleLabels:   &model.ScaleLabels{Min: "Не планирую вообще", Max: "Контролирую полностью"},
			ScoreCategory: "strategy",
		},
		{
			ID:            "ma-one-step",
			Kind:          model.StepTextInput,
			Title:         "Один шаг к финансовому спокойствию",
			Description:   "Что вы можете сделать на этой неделе, чтобы снизить денежную тревогу? Даже маленький шаг.",
			Placeholder:   "Например: посчитать расходы за прошлый месяц...",
			ScoreCategory: "strategy",
		},
		{
			ID:    "ma-info",
			Kind:  model.StepInfo,
			Title: "Вы начали менять отношение к деньгам",
			Description: "Осознать свои денежные установки — значит перестать быть их заложником. Вы только что " +
				"увидели, как детские фразы влияют на сегодняшние решения, и наметили конкретный шаг. Финансовое " +
				"спокойствие — это не про сумму на счёте, а про отношение к деньгам. И оно уже меняется.",
		},
		{
			ID:    "ma-result",
			Kind:  model.StepResult,
			Title: "Ваш результат",
		},
	},
}
