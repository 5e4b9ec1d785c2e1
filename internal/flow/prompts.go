package flow

// User-facing texts of the conversation. Error prompts are fixed per
// step; the form re-sends them verbatim until the input parses.
const (
	textWelcome = "Здравствуйте!\n" +
		"Ответьте на несколько вопросов о КДП в вашей компании, и бот посчитает " +
		"разницу между бумажным и электронным кадровым документооборотом 💰"

	textStopped = "Вы прекратили ввод данных. Нажмите «Начать», когда будете готовы к расчётам."

	textEcho = "Не могу обработать это.\n" +
		"Если вы вводили число, повторите: число должно быть без пробелов."

	promptEmployeeCount = "Сколько сотрудников работает в вашей компании?"

	promptLicenseChoice = "Какой вариант КЭДО вам больше подходит:\n" +
		"\n" +
		"HRlink Lite — для простых кадровых процессов:\n" +
		"- интеграции с «1С:ЗУП» и «1С:Фреш»;\n" +
		"- уведомления через Telegram или почту;\n" +
		"- облачное размещение;\n" +
		"- сопровождение через службу заботы.\n" +
		"\n" +
		"HRlink Standard — для кадровых процессов с нетиповыми маршрутами " +
		"и большим количеством интеграций:\n" +
		"- интеграции с «1С», «Битрикс24», «БОСС-Кадровик», SAP;\n" +
		"- уведомления через Telegram, почту и СМС;\n" +
		"- возможность доработок после внедрения;\n" +
		"- размещение на сервере;\n" +
		"- персональное сопровождение.\n" +
		"\n" +
		"Используйте кнопки внизу сообщения."

	promptHRSpecialistCount = "Сколько кадровых специалистов в вашей компании?"

	promptDocsPerEmployee = "Сколько в среднем документов подписывает сотрудник за год?\n" +
		"Обычно это около 30 документов. Укажите число, актуальное для вашей компании."

	promptPagesPerDoc = "Сколько в среднем страниц в каждом документе?\n" +
		"Обычно это 1,5 страницы. Укажите число, актуальное для вашей компании."

	promptTurnoverPct = "Какой процент текучки в вашей организации?\n" +
		"Введите число, знак «%» указывать не нужно."

	promptAvgSalary = "Какая средняя ежемесячная зарплата сотрудников отдела кадров с учётом налогов?\n" +
		"\n" +
		"Данные нужны для точного расчёта времени, которое сотрудники отдела кадров " +
		"тратят на работу с бумажными документами, и не будут переданы или " +
		"использованы вне этого бота."

	promptCourierCost = "Сколько в среднем стоит одна курьерская доставка документов?\n" +
		"Введите 0, если нет курьерских доставок."

	promptHRDeliveryPct = "Какой процент от общего числа курьерских доставок занимает " +
		"отправка кадровых документов?\n" +
		"Введите число, знак «%» указывать не нужно."

	errInteger        = "Пожалуйста, введите целое число."
	errPositiveNumber = "Пожалуйста, введите положительное число."
	errDecimalNumber  = "Пожалуйста, введите число с точкой или запятой."
	errNumber         = "Пожалуйста, введите число."
	errUseButtons     = "Пожалуйста, используйте кнопки внизу сообщения."
	errINN            = "ИНН должен состоять из 10 или 12 цифр. Укажите ИНН или название компании."

	promptContactName       = "Как вас зовут?"
	promptContactPhone      = "Укажите номер телефона для связи."
	promptContactEmail      = "Укажите электронную почту."
	promptContactOrg        = "Укажите название вашей компании или её ИНН."
	promptContactPreference = "Как с вами удобнее связаться: по телефону, почте или в мессенджере?"

	textLeadThanks = "Спасибо, передали информацию менеджеру, свяжемся с вами в ближайшее время 💙"

	textContactOffer = "Оставьте заявку, и мы расскажем о возможностях КЭДО-платформы HRlink, " +
		"поможем обосновать внедрение перед руководителем и ответим на ваши вопросы."

	textResultsTail = "Точная цена рассчитывается менеджером индивидуально для каждого клиента.\n" +
		"Вы получите:\n" +
		"\n" +
		"— множество интеграций с учётными системами и не только;\n" +
		"— найм и работу с сотрудниками, самозанятыми и по ГПХ;\n" +
		"— легитимное подписание и хранение документов;\n" +
		"— удобный личный кабинет сотрудника;\n" +
		"— гибкие маршруты и процессы;\n" +
		"— все виды электронных подписей."
)

// Button labels.
const (
	labelStart        = "Приступить к расчётам 📱"
	labelRestart      = "Начать расчёт заново ⚙"
	labelStop         = "Стоп ⛔"
	labelConfirm      = "Подтвердить ✅"
	labelTierLite     = "HRlink Lite"
	labelTierStandard = "HRlink Standard"
	labelContactMe    = "Свяжитесь со мной 🙋"
)
