package bot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/Spok95/canna-erp/internal/infra/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UoMLister interface {
	List(ctx context.Context) ([]uoms.UnitOfMeasure, error)
}

type WeightStore interface {
	ReplaceAll(ctx context.Context, entries []usableweights.Entry) error
}

type Bot struct {
	api       *tgbotapi.BotAPI
	log       *slog.Logger
	adminUser int64
	conv      *packages.Converter
	weights   *usableweights.Registry
	store     WeightStore
	uoms      UoMLister
	metrics   *metrics.Metrics
}

// New: store и m могут быть nil.
func New(api *tgbotapi.BotAPI, log *slog.Logger, adminUserID int64,
	conv *packages.Converter, weights *usableweights.Registry,
	store WeightStore, uomList UoMLister, m *metrics.Metrics) *Bot {

	return &Bot{
		api: api, log: log, adminUser: adminUserID,
		conv: conv, weights: weights, store: store,
		uoms: uomList, metrics: m,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				b.onMessage(ctx, upd.Message)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = mainReplyKeyboard()
	b.send(m)
}

func (b *Bot) onMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch {
	case msg.IsCommand():
		b.handleCommand(ctx, msg)
	case msg.Document != nil:
		b.handleWeightsUpload(ctx, msg)
	default:
		b.reply(chatID, helpText)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start", "help":
		b.reply(chatID, helpText)

	case "split":
		args, err := parseSplitArgs(msg.CommandArguments())
		if err != nil {
			b.reply(chatID, err.Error()+"\n\n"+splitUsage)
			return
		}
		preview, err := b.conv.Preview(args.parent(), args.item(), args.childUoM(), args.ChildQty)
		if b.metrics != nil {
			b.metrics.ObserveSplit(err)
		}
		if err != nil {
			b.reply(chatID, describeError(err))
			return
		}
		b.reply(chatID, formatPreview(args, preview))

	case "uoms":
		list, err := b.uoms.List(ctx)
		if err != nil {
			b.log.Error("list uoms", "err", err)
			b.reply(chatID, "Не удалось загрузить справочник единиц.")
			return
		}
		b.reply(chatID, formatUoMs(list))

	case "weights":
		b.sendWeightsExcel(chatID)

	default:
		b.reply(chatID, "Неизвестная команда.\n\n"+helpText)
	}
}

// sendWeightsExcel отправляет текущую таблицу usable weight файлом.
func (b *Bot) sendWeightsExcel(chatID int64) {
	buf := &bytes.Buffer{}
	if err := usableweights.WriteXLSX(buf, b.weights.Current().Entries()); err != nil {
		b.log.Error("export usable weights", "err", err)
		b.reply(chatID, "Ошибка формирования файла.")
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("usable_weights_%s.xlsx", time.Now().Format("20060102_150405")),
		Bytes: buf.Bytes(),
	})
	doc.Caption = "Таблица usable weight. Администратор может изменить колонку grams и прислать файл обратно."
	b.send(doc)
}

// isAdmin: таблицу меняет только пользователь telegram.admin_user_id, в личке или в группе.
func (b *Bot) isAdmin(msg *tgbotapi.Message) bool {
	return b.adminUser != 0 && msg.From != nil && msg.From.ID == b.adminUser
}

// handleWeightsUpload принимает xlsx от администратора и заменяет таблицу целиком.
func (b *Bot) handleWeightsUpload(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !b.isAdmin(msg) {
		b.reply(chatID, "Загружать таблицу может только администратор.")
		return
	}

	data, err := b.downloadTelegramFile(msg.Document.FileID)
	if err == nil {
		err = b.applyWeights(ctx, data)
	}
	if b.metrics != nil {
		b.metrics.ObserveWeightImport("telegram", err)
	}
	if err != nil {
		b.log.Warn("usable weights upload rejected", "chat_id", chatID, "err", err)
		b.reply(chatID, "Файл не принят: "+err.Error())
		return
	}
	b.reply(chatID, fmt.Sprintf("Таблица обновлена, записей: %d.", b.weights.Current().Len()))
}

func (b *Bot) applyWeights(ctx context.Context, data []byte) error {
	entries, err := usableweights.ReadXLSX(bytes.NewReader(data))
	if err != nil {
		return err
	}
	table, err := usableweights.NewTable(entries)
	if err != nil {
		return err
	}
	if b.store != nil {
		if err := b.store.ReplaceAll(ctx, table.Entries()); err != nil {
			return fmt.Errorf("persist usable weights: %w", err)
		}
	}
	b.weights.Replace(table)
	b.log.Info("usable weights imported", "source", "telegram", "count", table.Len())
	return nil
}

// downloadTelegramFile скачивает файл по FileID через Telegram API.
func (b *Bot) downloadTelegramFile(fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file url: %w", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram returned status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 5<<20))
}
