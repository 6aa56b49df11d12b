package ui

const (
	MsgWelcome = "<b>Добро пожаловать!</b> ✨\n" +
		"Я сохраняю фото/видео с описанием и умею искать по тегам и датам.\n" +
		"Выберите кнопку ниже или напишите команду вручную."

	MsgHelp = "<b>Короткая шпаргалка</b> 📌\n" +
		"📤 /upload — отправьте фото или видео, затем описание\n" +
		"🖼️ /list — листать записи с фото/видео\n" +
		"🔎 /ids [page] — список ID\n" +
		"🧾 /get &lt;id&gt; — медиа и описание\n" +
		"🏷️ /filter #tag days=7 page=2\n" +
		"🏷️ /filter #tag from=2025-01-01 to=2025-01-19 page=2\n" +
		"🔤 /search &lt;слово&gt; — поиск по описанию\n" +
		"✏️ /edit &lt;id&gt; &lt;новое описание&gt;\n" +
		"🗑️ /delete &lt;id&gt; — удалить запись\n" +
		"✅ /approve &lt;id&gt; — одобрить (для админов)\n" +
		"❌ /cancel — отменить загрузку"

	MsgMainMenu = "Главное меню 🧭"

	MsgUploadStep1     = "Шаг 1/2: отправьте одно фото или видео. /cancel — отмена."
	MsgUploadStep2     = "Шаг 2/2: отправьте текстовое описание. /cancel — отмена."
	MsgUploadCancelled = "Загрузка отменена. Можете начать заново: /upload"
	MsgMediaRequired   = "Нужен именно фото или видео. Процесс отменен."
	MsgTextRequired    = "Нужно текстовое описание. Отправьте текст."
	MsgNumberRequired  = "Нужно число. Введите ID записи."

	MsgSaved           = "Контент сохранен."
	MsgSavedModeration = "Контент сохранен и отправлен на модерацию."
	MsgUpdated         = "Описание обновлено."
	MsgDeleted         = "Запись удалена."
	MsgDeletedCaption  = "🗑️ Запись удалена."
	MsgApproved        = "Запись одобрена."

	MsgNotFound           = "Запись не найдена."
	MsgAwaitingModeration = "Запись на модерации."
	MsgEmptyList          = "Список пуст."
	MsgNothingFound       = "Ничего не найдено."
	MsgEmptyDescription   = "Описание не должно быть пустым."

	MsgEditForbidden   = "Редактирование доступно только администраторам."
	MsgAdminsOnly      = "Команда доступна только администраторам."
	MsgNoRights        = "Недостаточно прав."
	MsgDeleteCancelled = "Удаление отменено."

	MsgEnterGetID      = "Введите ID записи (например: 12)."
	MsgEnterEditID     = "Введите ID записи для редактирования."
	MsgEnterDeleteID   = "Введите ID записи для удаления."
	MsgEnterEditText   = "Введите новое описание."
	MsgEnterSearchText = "Введите слово или фразу для поиска."
	MsgEnterFilterArgs = "Введите параметры фильтра, например:\n" +
		"#cats days=7\n" +
		"#cats #travel from=2025-01-01 to=2025-01-19"
	MsgEditIDLost      = "ID не найден. Начните заново."
	MsgSearchPhrase    = "Нужно слово или фраза."
	MsgFilterArgsEmpty = "Введите параметры фильтра."

	MsgFilterCriteria = "Нужно указать теги или даты.\n" +
		"Пример: #cats days=7\n" +
		"Пример: #cats from=2025-01-01 to=2025-01-19"
	MsgFilterCriteriaCommand = "Нужно указать теги или даты.\n" +
		"Пример: /filter #cats days=7\n" +
		"Пример: /filter #cats from=2025-01-01 to=2025-01-19"

	MsgSaveFailed    = "Не удалось сохранить запись."
	MsgInternalError = "Произошла ошибка. Попробуйте позже."
	MsgDeletedAck    = "Удалено."

	MsgGetUsage     = "Использование: /get <id>"
	MsgEditUsage    = "Использование: /edit <id> <новое описание>"
	MsgDeleteUsage  = "Использование: /delete <id>"
	MsgApproveUsage = "Использование: /approve <id>"
	MsgSearchUsage  = "Использование: /search <слово или фраза>"
	MsgFilterUsage  = "Формат фильтра:\n" +
		"/filter #tag days=7 page=1\n" +
		"/filter #tag1 #tag2 from=2025-01-01 to=2025-01-19 page=1"
)
