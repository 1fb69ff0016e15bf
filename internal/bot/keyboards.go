package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

func mainReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/uoms"),
			tgbotapi.NewKeyboardButton("/weights"),
			tgbotapi.NewKeyboardButton("/help"),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}
