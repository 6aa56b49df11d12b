package ui

const (
	ButtonUpload = "📤 Загрузить"
	ButtonBrowse = "🖼️ Лента"
	ButtonFilter = "🏷️ Фильтр"
	ButtonSearch = "🔤 Поиск"
	ButtonIDs    = "🔎 Список ID"
	ButtonGet    = "🧾 Найти по ID"
	ButtonEdit   = "✏️ Редактировать"
	ButtonDelete = "🗑️ Удалить"
	ButtonHelp   = "📚 Помощь"
	ButtonMenu   = "🏠 Меню"
	ButtonCancel = "❌ Отменить"
)

func MainMenu() [][]string {
	return [][]string{
		{ButtonUpload, ButtonBrowse},
		{ButtonFilter, ButtonSearch},
		{ButtonIDs, ButtonGet},
		{ButtonEdit, ButtonDelete},
		{ButtonHelp, ButtonMenu},
		{ButtonCancel},
	}
}
