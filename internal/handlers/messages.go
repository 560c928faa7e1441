package handlers

const (
	msgGreetingNew  = "Здравствуйте! Вы уже пользовались этим ботом?"
	msgWelcomeBack  = "Добро пожаловать обратно!"
	msgWelcomeNamed = "Добро пожаловать обратно, %s!"

	msgAskPhone     = "Введите ваш номер телефона для регистрации:"
	msgBadPhone     = "Пожалуйста, введите корректный номер телефона."
	msgAskNickname  = "Номер телефона сохранён. Теперь введите ваш никнейм:"
	msgNickSaved    = "Никнейм '%s' успешно сохранён!"
	msgLostPhone    = "Ошибка: номер телефона не найден. Пожалуйста, начните регистрацию заново."
	msgChooseAction = "Выберите желаемое действие:"

	msgChooseZone     = "Выберите желаемую зону:"
	msgAskCount       = "Сколько компьютеров хотите забронировать?"
	msgEnterNumber    = "Пожалуйста, введите целое число."
	msgCountRange     = "Число должно быть положительным и не больше максимального количества %d компьютеров для зоны %s."
	msgChooseMachines = "Выберите компьютеры для бронирования:"
	msgMachinePicked  = "✅ Компьютер %d выбран."
	msgMachineDup     = "⚠️ Компьютер %d уже выбран!"
	msgMachinesDone   = "Компьютеры успешно выбраны. Пожалуйста, выберите дату бронирования."
	msgChooseDate     = "Выберите дату для бронирования:"
	msgChooseTime     = "Вы выбрали дату: %s. Выберите время:"
	msgNoSlots        = "На выбранную дату нет доступного времени. Пожалуйста, выберите другую дату:"
	msgConfirmSlot    = "Вы выбрали время: %s на %s. Подтвердите выбор."

	msgBookingSaved  = "✅ Ваша бронь успешно сохранена!"
	msgMissingFields = "Не удалось сохранить бронирование, так как отсутствуют следующие данные: %s. Пожалуйста, введите их."
	msgMachinesTaken = "Один или несколько выбранных компьютеров уже забронированы. Пожалуйста, выберите другие."

	msgNoBookings       = "У вас нет активных броней."
	msgChooseCancel     = "Выберите бронь для отмены:"
	msgBookingCancelled = "✅ Бронирование успешно отменено."
	msgAllCancelled     = "✅ Все ваши бронирования успешно отменены."

	msgStale        = "Этот шаг уже завершён."
	msgGenericError = "❌ Произошла ошибка. Попробуйте снова."

	msgRules = `Правила клуба:
1. Бронь действует 15 минут после выбранного времени, затем снимается.
2. Еда и напитки — только в лаунж-зоне.
3. За оборудование отвечает игрок: порча возмещается по прайсу.
4. Администратор может пересадить игроков при технических работах.
5. Отменить бронь можно в любой момент через меню.`
)
