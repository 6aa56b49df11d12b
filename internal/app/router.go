package app

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/enums"
	"github.com/slvrxyzz/telegram-media-bot/internal/domain/model"
	"github.com/slvrxyzz/telegram-media-bot/internal/infra/telegram"
	catalogsvc "github.com/slvrxyzz/telegram-media-bot/internal/services/catalog"
	mediasvc "github.com/slvrxyzz/telegram-media-bot/internal/services/media"
	"github.com/slvrxyzz/telegram-media-bot/internal/services/session"
	"github.com/slvrxyzz/telegram-media-bot/internal/ui"
)

const (
	callbackPrefixBrowse        = "browse"
	callbackPrefixShowID        = "show_id"
	callbackPrefixConfirmDelete = "confirm_delete"
	callbackPrefixDelete        = "delete"
	callbackDeleteCancel        = "delete_cancel"
)

func (a *App) routeUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		a.routeMessage(ctx, update.Message)
	}

	if update.CallbackQuery != nil {
		a.handleCallback(ctx, update.CallbackQuery)
	}
}

func (a *App) routeMessage(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.Chat == nil {
		return
	}

	if message.IsCommand() {
		a.handleCommand(ctx, message)
		return
	}

	if a.handleMenuButton(ctx, message) {
		return
	}

	a.handlePendingState(ctx, message)
}

func (a *App) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	isAdmin := a.isAdmin(message.From)

	switch message.Command() {
	case "start":
		a.sendMenuMessage(chatID, ui.MsgWelcome)
	case "help":
		a.sendMenuMessage(chatID, ui.MsgHelp)
	case "menu":
		a.sendMenuMessage(chatID, ui.MsgMainMenu)
	case "upload":
		a.startUpload(chatID)
	case "cancel":
		a.cancelFlow(chatID)
	case "list":
		a.sendBrowsePage(ctx, chatID, 1, isAdmin)
	case "ids":
		page := 1
		if raw := strings.TrimSpace(message.CommandArguments()); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
				page = parsed
			}
		}
		a.sendIDsPage(ctx, chatID, page, isAdmin)
	case "get":
		id, ok := parseID(message.CommandArguments())
		if !ok {
			a.sendText(chatID, ui.MsgGetUsage)
			return
		}
		a.sendMediaByID(ctx, chatID, id, isAdmin)
	case "filter":
		raw := strings.TrimSpace(message.CommandArguments())
		if raw == "" {
			a.sendText(chatID, ui.MsgFilterUsage)
			return
		}
		args := catalogsvc.ParseFilterArgs(raw, time.Now())
		a.runFilter(ctx, chatID, args, isAdmin, ui.MsgFilterCriteriaCommand)
	case "search":
		raw := strings.TrimSpace(message.CommandArguments())
		if raw == "" {
			a.sendText(chatID, ui.MsgSearchUsage)
			return
		}
		a.runSearch(ctx, chatID, raw, isAdmin)
	case "edit":
		id, text, ok := splitEditArgs(message.CommandArguments())
		if !ok {
			a.sendText(chatID, ui.MsgEditUsage)
			return
		}
		a.editByID(ctx, chatID, id, text, isAdmin)
	case "delete":
		id, ok := parseID(message.CommandArguments())
		if !ok {
			a.sendText(chatID, ui.MsgDeleteUsage)
			return
		}
		a.deleteByID(ctx, chatID, id)
	case "approve":
		id, ok := parseID(message.CommandArguments())
		if !ok {
			a.sendText(chatID, ui.MsgApproveUsage)
			return
		}
		if !isAdmin {
			a.sendText(chatID, ui.MsgAdminsOnly)
			return
		}
		a.approveByID(ctx, chatID, id)
	}
}

func (a *App) handleMenuButton(ctx context.Context, message *tgbotapi.Message) bool {
	chatID := message.Chat.ID
	isAdmin := a.isAdmin(message.From)

	switch strings.TrimSpace(message.Text) {
	case ui.ButtonUpload:
		a.startUpload(chatID)
	case ui.ButtonBrowse:
		a.sendBrowsePage(ctx, chatID, 1, isAdmin)
	case ui.ButtonIDs:
		a.sendIDsPage(ctx, chatID, 1, isAdmin)
	case ui.ButtonGet:
		a.sessions.SetState(chatID, telegram.StateAwaitingGetID)
		a.sendText(chatID, ui.MsgEnterGetID)
	case ui.ButtonFilter:
		a.sessions.SetState(chatID, telegram.StateAwaitingFilterArgs)
		a.sendText(chatID, ui.MsgEnterFilterArgs)
	case ui.ButtonSearch:
		a.sessions.SetState(chatID, telegram.StateAwaitingSearchText)
		a.sendText(chatID, ui.MsgEnterSearchText)
	case ui.ButtonEdit:
		a.sessions.SetState(chatID, telegram.StateAwaitingEditID)
		a.sendText(chatID, ui.MsgEnterEditID)
	case ui.ButtonDelete:
		a.sessions.SetState(chatID, telegram.StateAwaitingDeleteID)
		a.sendText(chatID, ui.MsgEnterDeleteID)
	case ui.ButtonHelp:
		a.sendMenuMessage(chatID, ui.MsgHelp)
	case ui.ButtonMenu:
		a.sendMenuMessage(chatID, ui.MsgMainMenu)
	case ui.ButtonCancel:
		a.cancelFlow(chatID)
	default:
		return false
	}
	return true
}

func (a *App) handlePendingState(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	isAdmin := a.isAdmin(message.From)
	current := a.sessions.Get(chatID)

	switch current.State {
	case telegram.StateAwaitingMedia:
		a.receiveMedia(chatID, message)
	case telegram.StateAwaitingDescription:
		a.receiveDescription(ctx, chatID, current, message.Text)
	case telegram.StateAwaitingGetID:
		id, ok := parseID(message.Text)
		if !ok {
			a.sendText(chatID, ui.MsgNumberRequired)
			return
		}
		a.sendMediaByID(ctx, chatID, id, isAdmin)
	case telegram.StateAwaitingDeleteID:
		id, ok := parseID(message.Text)
		if !ok {
			a.sendText(chatID, ui.MsgNumberRequired)
			return
		}
		a.sessions.Clear(chatID)
		a.sendDeleteConfirm(chatID, id)
	case telegram.StateAwaitingEditID:
		id, ok := parseID(message.Text)
		if !ok {
			a.sendText(chatID, ui.MsgNumberRequired)
			return
		}
		a.sessions.Put(chatID, session.Session{State: telegram.StateAwaitingEditText, EditID: id})
		a.sendText(chatID, ui.MsgEnterEditText)
	case telegram.StateAwaitingEditText:
		if strings.TrimSpace(message.Text) == "" {
			a.sendText(chatID, ui.MsgTextRequired)
			return
		}
		a.sessions.Clear(chatID)
		if current.EditID == 0 {
			a.sendText(chatID, ui.MsgEditIDLost)
			return
		}
		a.editByID(ctx, chatID, current.EditID, message.Text, isAdmin)
	case telegram.StateAwaitingSearchText:
		if strings.TrimSpace(message.Text) == "" {
			a.sendText(chatID, ui.MsgSearchPhrase)
			return
		}
		a.sessions.Clear(chatID)
		a.runSearch(ctx, chatID, strings.TrimSpace(message.Text), isAdmin)
	case telegram.StateAwaitingFilterArgs:
		if strings.TrimSpace(message.Text) == "" {
			a.sendText(chatID, ui.MsgFilterArgsEmpty)
			return
		}
		a.sessions.Clear(chatID)
		args := catalogsvc.ParseFilterArgs(message.Text, time.Now())
		a.runFilter(ctx, chatID, args, isAdmin, ui.MsgFilterCriteria)
	}
}

func (a *App) startUpload(chatID int64) {
	a.sessions.SetState(chatID, telegram.StateAwaitingMedia)
	a.sendText(chatID, ui.MsgUploadStep1)
}

func (a *App) cancelFlow(chatID int64) {
	a.sessions.Clear(chatID)
	a.sendText(chatID, ui.MsgUploadCancelled)
}

// receiveMedia accepts exactly one photo or video; anything else aborts
// the upload flow.
func (a *App) receiveMedia(chatID int64, message *tgbotapi.Message) {
	var next session.Session

	switch {
	case len(message.Photo) > 0:
		best := message.Photo[len(message.Photo)-1]
		next = session.Session{
			State:        telegram.StateAwaitingDescription,
			FileID:       best.FileID,
			FileUniqueID: best.FileUniqueID,
			MediaType:    enums.MediaTypePhoto,
		}
	case message.Video != nil:
		next = session.Session{
			State:        telegram.StateAwaitingDescription,
			FileID:       message.Video.FileID,
			FileUniqueID: message.Video.FileUniqueID,
			MediaType:    enums.MediaTypeVideo,
		}
	default:
		a.sessions.Clear(chatID)
		a.sendText(chatID, ui.MsgMediaRequired)
		return
	}

	a.sessions.Put(chatID, next)
	a.sendText(chatID, ui.MsgUploadStep2)
}

func (a *App) receiveDescription(ctx context.Context, chatID int64, current session.Session, text string) {
	if strings.TrimSpace(text) == "" {
		a.sendText(chatID, ui.MsgTextRequired)
		return
	}

	item, err := a.mediaService.Create(ctx, mediasvc.CreateInput{
		FileID:       current.FileID,
		FileUniqueID: current.FileUniqueID,
		MediaType:    current.MediaType,
		Description:  text,
	})
	if err != nil {
		a.logger.Error("store uploaded media", "error", err, "chat_id", chatID)
		a.sessions.Clear(chatID)
		a.sendText(chatID, ui.MsgSaveFailed)
		return
	}

	a.sessions.Clear(chatID)
	if item.IsApproved {
		a.sendText(chatID, ui.MsgSaved)
	} else {
		a.sendText(chatID, ui.MsgSavedModeration)
	}
}

func (a *App) sendMediaByID(ctx context.Context, chatID int64, id int64, isAdmin bool) {
	item, err := a.mediaService.Get(ctx, id, isAdmin)
	switch {
	case errors.Is(err, mediasvc.ErrNotFound):
		a.sendText(chatID, ui.MsgNotFound)
		return
	case errors.Is(err, mediasvc.ErrAwaitingModeration):
		a.sendText(chatID, ui.MsgAwaitingModeration)
		return
	case err != nil:
		a.logger.Error("load media by id", "error", err, "media_id", id)
		a.sendText(chatID, ui.MsgInternalError)
		return
	}

	rows := [][]telegram.InlineButton{actionButtons(item.ID, isAdmin)}
	a.sendMedia(chatID, item, ui.Caption(item), rows)
}

func (a *App) sendBrowsePage(ctx context.Context, chatID int64, page int, isAdmin bool) {
	result, err := a.catalogService.Browse(ctx, page, isAdmin)
	if err != nil {
		a.logger.Error("browse media", "error", err, "page", page)
		a.sendText(chatID, ui.MsgInternalError)
		return
	}
	if len(result.Items) == 0 {
		a.sendText(chatID, ui.MsgEmptyList)
		return
	}

	item := result.Items[0]
	rows := browseKeyboard(result.Page, result.TotalPages, item.ID, isAdmin)
	a.sendMedia(chatID, item, ui.Caption(item), rows)
}

func (a *App) sendIDsPage(ctx context.Context, chatID int64, page int, isAdmin bool) {
	result, err := a.catalogService.List(ctx, page, isAdmin)
	if err != nil {
		a.logger.Error("list media ids", "error", err, "page", page)
		a.sendText(chatID, ui.MsgInternalError)
		return
	}
	if len(result.Items) == 0 {
		a.sendText(chatID, ui.MsgEmptyList)
		return
	}

	a.sendHTML(chatID, ui.RenderIDsList(result.Items, result.Page, result.TotalPages))
}

func (a *App) runFilter(ctx context.Context, chatID int64, args catalogsvc.FilterArgs, isAdmin bool, emptyCriteriaHint string) {
	result, err := a.catalogService.Filter(ctx, args, isAdmin)
	switch {
	case errors.Is(err, catalogsvc.ErrEmptyFilter):
		a.sendText(chatID, emptyCriteriaHint)
		return
	case err != nil:
		a.logger.Error("filter media", "error", err)
		a.sendText(chatID, ui.MsgInternalError)
		return
	}
	if len(result.Items) == 0 {
		a.sendText(chatID, ui.MsgNothingFound)
		return
	}

	a.sendHTML(chatID, ui.RenderFilterResults(result.Items, result.Page, result.TotalPages))
}

func (a *App) runSearch(ctx context.Context, chatID int64, text string, isAdmin bool) {
	items, err := a.catalogService.Search(ctx, text, isAdmin)
	switch {
	case errors.Is(err, catalogsvc.ErrEmptySearch):
		a.sendText(chatID, ui.MsgEnterSearchText)
		return
	case err != nil:
		a.logger.Error("search media", "error", err)
		a.sendText(chatID, ui.MsgInternalError)
		return
	}
	if len(items) == 0 {
		a.sendText(chatID, ui.MsgNothingFound)
		return
	}

	a.sendHTML(chatID, ui.RenderSearchResults(items))
}

func (a *App) editByID(ctx context.Context, chatID int64, id int64, text string, isAdmin bool) {
	err := a.mediaService.Edit(ctx, id, strings.TrimSpace(text), isAdmin)
	switch {
	case errors.Is(err, mediasvc.ErrForbidden):
		a.sendText(chatID, ui.MsgEditForbidden)
	case errors.Is(err, mediasvc.ErrNotFound):
		a.sendText(chatID, ui.MsgNotFound)
	case errors.Is(err, mediasvc.ErrEmptyDescription):
		a.sendText(chatID, ui.MsgEmptyDescription)
	case err != nil:
		a.logger.Error("edit media", "error", err, "media_id", id)
		a.sendText(chatID, ui.MsgInternalError)
	default:
		a.sendText(chatID, ui.MsgUpdated)
	}
}

func (a *App) deleteByID(ctx context.Context, chatID int64, id int64) {
	err := a.mediaService.Delete(ctx, id)
	switch {
	case errors.Is(err, mediasvc.ErrNotFound):
		a.sendText(chatID, ui.MsgNotFound)
	case err != nil:
		a.logger.Error("delete media", "error", err, "media_id", id)
		a.sendText(chatID, ui.MsgInternalError)
	default:
		a.sendText(chatID, ui.MsgDeleted)
	}
}

func (a *App) approveByID(ctx context.Context, chatID int64, id int64) {
	err := a.mediaService.Approve(ctx, id, true)
	switch {
	case errors.Is(err, mediasvc.ErrNotFound):
		a.sendText(chatID, ui.MsgNotFound)
	case err != nil:
		a.logger.Error("approve media", "error", err, "media_id", id)
		a.sendText(chatID, ui.MsgInternalError)
	default:
		a.sendText(chatID, ui.MsgApproved)
	}
}

func (a *App) sendDeleteConfirm(chatID int64, id int64) {
	msg := tgbotapi.NewMessage(chatID, ui.ConfirmDeletePrompt(id))
	msg.ReplyMarkup = telegram.BuildInlineKeyboard(confirmDeleteKeyboard(id))
	if err := a.tg.Send(msg); err != nil {
		a.logger.Error("send delete confirm", "error", err, "chat_id", chatID)
	}
}

func (a *App) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query == nil || query.From == nil {
		return
	}

	chatID, ok := callbackChatID(query)
	if !ok {
		a.answerCallback(query.ID, "", false)
		return
	}
	isAdmin := a.cfg.IsAdmin(query.From.ID)

	ackText := ""
	ackAlert := false
	defer func() { a.answerCallback(query.ID, ackText, ackAlert) }()

	data := query.Data
	switch {
	case data == callbackDeleteCancel:
		ackText = ui.MsgDeleteCancelled

	case strings.HasPrefix(data, callbackPrefixBrowse+":"):
		page, ok := parseID(strings.TrimPrefix(data, callbackPrefixBrowse+":"))
		if !ok {
			return
		}
		a.editBrowsePage(ctx, chatID, query.Message.MessageID, int(page), isAdmin)

	case strings.HasPrefix(data, callbackPrefixShowID+":"):
		id, ok := parseID(strings.TrimPrefix(data, callbackPrefixShowID+":"))
		if !ok {
			return
		}
		ackText = ui.ShowIDAlert(id)
		ackAlert = true

	case strings.HasPrefix(data, callbackPrefixConfirmDelete+":"):
		id, ok := parseID(strings.TrimPrefix(data, callbackPrefixConfirmDelete+":"))
		if !ok {
			return
		}
		if !isAdmin {
			ackText = ui.MsgNoRights
			ackAlert = true
			return
		}
		markup := telegram.BuildInlineKeyboard(confirmDeleteKeyboard(id))
		edit := tgbotapi.NewEditMessageReplyMarkup(chatID, query.Message.MessageID, markup)
		if err := a.tg.Send(edit); err != nil {
			a.logger.Warn("show delete confirm keyboard", "error", err, "media_id", id)
		}

	case strings.HasPrefix(data, callbackPrefixDelete+":"):
		id, ok := parseID(strings.TrimPrefix(data, callbackPrefixDelete+":"))
		if !ok {
			return
		}
		if !isAdmin {
			ackText = ui.MsgNoRights
			ackAlert = true
			return
		}
		err := a.mediaService.Delete(ctx, id)
		switch {
		case errors.Is(err, mediasvc.ErrNotFound):
			ackText = ui.MsgNotFound
			ackAlert = true
			return
		case err != nil:
			a.logger.Error("delete media from callback", "error", err, "media_id", id)
			ackText = ui.MsgInternalError
			ackAlert = true
			return
		}
		caption := tgbotapi.NewEditMessageCaption(chatID, query.Message.MessageID, ui.MsgDeletedCaption)
		if err := a.tg.Send(caption); err != nil {
			a.logger.Warn("edit caption after delete", "error", err, "media_id", id)
		}
		ackText = ui.MsgDeletedAck
	}
}

// editBrowsePage swaps the media of the carousel message in place; when
// telegram rejects the edit a fresh message is sent instead.
func (a *App) editBrowsePage(ctx context.Context, chatID int64, messageID int, page int, isAdmin bool) {
	result, err := a.catalogService.Browse(ctx, page, isAdmin)
	if err != nil {
		a.logger.Error("browse media", "error", err, "page", page)
		return
	}
	if len(result.Items) == 0 {
		edit := tgbotapi.NewEditMessageCaption(chatID, messageID, ui.MsgEmptyList)
		if err := a.tg.Send(edit); err != nil {
			a.sendText(chatID, ui.MsgEmptyList)
		}
		return
	}

	item := result.Items[0]
	caption := ui.Caption(item)
	markup := telegram.BuildInlineKeyboard(browseKeyboard(result.Page, result.TotalPages, item.ID, isAdmin))

	edit := tgbotapi.EditMessageMediaConfig{
		BaseEdit: tgbotapi.BaseEdit{
			ChatID:      chatID,
			MessageID:   messageID,
			ReplyMarkup: &markup,
		},
		Media: inputMedia(item, caption),
	}
	if err := a.tg.Send(edit); err != nil {
		a.logger.Warn("edit browse message", "error", err, "page", page)
		a.sendMedia(chatID, item, caption, browseKeyboard(result.Page, result.TotalPages, item.ID, isAdmin))
	}
}

func (a *App) sendMedia(chatID int64, item model.Media, caption string, rows [][]telegram.InlineButton) {
	markup := telegram.BuildInlineKeyboard(rows)
	file := mediaFile(item)

	var msg tgbotapi.Chattable
	if item.MediaType == enums.MediaTypeVideo {
		video := tgbotapi.NewVideo(chatID, file)
		video.Caption = caption
		video.ParseMode = tgbotapi.ModeHTML
		video.ReplyMarkup = markup
		msg = video
	} else {
		photo := tgbotapi.NewPhoto(chatID, file)
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeHTML
		photo.ReplyMarkup = markup
		msg = photo
	}

	if err := a.tg.Send(msg); err != nil {
		a.logger.Error("send media message", "error", err, "chat_id", chatID, "media_id", item.ID)
	}
}

func (a *App) sendMenuMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = telegram.BuildReplyKeyboard(ui.MainMenu())
	if err := a.tg.Send(msg); err != nil {
		a.logger.Error("send menu message", "error", err, "chat_id", chatID)
	}
}

func (a *App) sendHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if err := a.tg.Send(msg); err != nil {
		a.logger.Error("send message", "error", err, "chat_id", chatID)
	}
}

func (a *App) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if err := a.tg.Send(msg); err != nil {
		a.logger.Error("send message", "error", err, "chat_id", chatID)
	}
}

func (a *App) answerCallback(callbackID, text string, alert bool) {
	cfg := tgbotapi.NewCallback(callbackID, text)
	cfg.ShowAlert = alert
	if err := a.tg.Send(cfg); err != nil {
		a.logger.Warn("answer callback", "error", err)
	}
}

func (a *App) isAdmin(user *tgbotapi.User) bool {
	return user != nil && a.cfg.IsAdmin(user.ID)
}

func actionButtons(mediaID int64, isAdmin bool) []telegram.InlineButton {
	buttons := []telegram.InlineButton{
		{Text: "🧾 ID", Data: callbackPrefixShowID + ":" + strconv.FormatInt(mediaID, 10)},
	}
	if isAdmin {
		buttons = append(buttons, telegram.InlineButton{
			Text: "🗑️ Удалить",
			Data: callbackPrefixConfirmDelete + ":" + strconv.FormatInt(mediaID, 10),
		})
	}
	return buttons
}

func browseKeyboard(page, totalPages int, mediaID int64, isAdmin bool) [][]telegram.InlineButton {
	var nav []telegram.InlineButton
	if page > 1 {
		nav = append(nav, telegram.InlineButton{
			Text: "⬅️ Предыдущая",
			Data: callbackPrefixBrowse + ":" + strconv.Itoa(page-1),
		})
	}
	if page < totalPages {
		nav = append(nav, telegram.InlineButton{
			Text: "Следующая ➡️",
			Data: callbackPrefixBrowse + ":" + strconv.Itoa(page+1),
		})
	}

	var rows [][]telegram.InlineButton
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, actionButtons(mediaID, isAdmin))
	return rows
}

func confirmDeleteKeyboard(mediaID int64) [][]telegram.InlineButton {
	return [][]telegram.InlineButton{{
		{Text: "✅ Да, удалить", Data: callbackPrefixDelete + ":" + strconv.FormatInt(mediaID, 10)},
		{Text: "❌ Нет", Data: callbackDeleteCancel},
	}}
}

func inputMedia(item model.Media, caption string) interface{} {
	file := mediaFile(item)
	if item.MediaType == enums.MediaTypeVideo {
		media := tgbotapi.NewInputMediaVideo(file)
		media.Caption = caption
		media.ParseMode = tgbotapi.ModeHTML
		return media
	}
	media := tgbotapi.NewInputMediaPhoto(file)
	media.Caption = caption
	media.ParseMode = tgbotapi.ModeHTML
	return media
}

func mediaFile(item model.Media) tgbotapi.RequestFileData {
	if item.LocalPath != "" {
		return tgbotapi.FilePath(item.LocalPath)
	}
	return tgbotapi.FileID(item.TelegramFileID)
}

func callbackChatID(query *tgbotapi.CallbackQuery) (int64, bool) {
	if query == nil || query.Message == nil {
		return 0, false
	}
	return query.Message.Chat.ID, true
}

// splitEditArgs cuts "<id> <new description>" on the first whitespace
// run of any kind, so a newline after the id works like a space.
func splitEditArgs(raw string) (int64, string, bool) {
	raw = strings.TrimSpace(raw)
	idx := strings.IndexFunc(raw, unicode.IsSpace)
	if idx < 0 {
		return 0, "", false
	}

	id, ok := parseID(raw[:idx])
	if !ok {
		return 0, "", false
	}
	text := strings.TrimSpace(raw[idx:])
	if text == "" {
		return 0, "", false
	}
	return id, text, true
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
