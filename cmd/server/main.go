package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/canna-erp/internal/bot"
	"github.com/Spok95/canna-erp/internal/config"
	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/Spok95/canna-erp/internal/infra/db"
	httpx "github.com/Spok95/canna-erp/internal/infra/http"
	"github.com/Spok95/canna-erp/internal/infra/logger"
	"github.com/Spok95/canna-erp/internal/infra/metrics"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/subosito/gotenv"
)

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config/example.yaml"
}

// loadWeights собирает таблицу: встроенные значения, затем конфиг, затем БД.
func loadWeights(ctx context.Context, cfg config.Config, repo *usableweights.Repo, m *metrics.Metrics, log *slog.Logger) (*usableweights.Table, error) {
	table, err := usableweights.NewTable(usableweights.Defaults())
	if err != nil {
		return nil, err
	}
	if len(cfg.UsableWeights) > 0 {
		table, err = table.Merge(cfg.UsableWeights)
		m.ObserveWeightImport("config", err)
		if err != nil {
			return nil, err
		}
	}
	if repo != nil {
		rows, err := repo.List(ctx)
		if err == nil {
			table, err = table.Merge(rows)
		}
		m.ObserveWeightImport("postgres", err)
		if err != nil {
			return nil, err
		}
	}
	log.Info("usable weights loaded", "count", table.Len())
	return table, nil
}

func main() {
	// .env необязателен
	_ = gotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	var (
		pool       *pgxpool.Pool
		weightRepo *usableweights.Repo
		uomList    httpx.UoMLister = uoms.StaticList(uoms.FromCatalog())
	)
	if cfg.Postgres.DSN != "" {
		if err := db.Migrate(cfg.Postgres.DSN); err != nil {
			log.Error("migrations failed", "err", err)
			return
		}
		log.Info("migrations applied")

		pool, err = db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Error("db connect failed", "err", err)
			return
		}
		defer pool.Close()
		log.Info("db connected")

		uomRepo := uoms.NewRepo(pool)
		list, err := uomRepo.List(ctx)
		if err != nil {
			log.Error("load uoms failed", "err", err)
			return
		}
		for _, u := range uoms.Unresolved(list) {
			log.Warn("uom is not convertible", "id", u.ID, "name", u.Name, "abbreviation", u.Abbreviation)
		}
		uomList = uomRepo
		weightRepo = usableweights.NewRepo(pool)
	} else {
		log.Info("postgres dsn is empty, running without database")
	}

	table, err := loadWeights(ctx, cfg, weightRepo, m, log)
	if err != nil {
		log.Error("load usable weights failed", "err", err)
		return
	}
	weights := usableweights.NewRegistry(table)
	conv := packages.NewConverter(weights)

	deps := httpx.Deps{
		Log:       log,
		Metrics:   m,
		Converter: conv,
		Weights:   weights,
		UoMs:      uomList,
	}
	// без nil-интерфейса с типизированным nil внутри
	if weightRepo != nil {
		deps.WeightStore = weightRepo
	}
	if cfg.Metrics.Enabled {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	srv := httpx.New(cfg.HTTP.Addr, deps)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
			stop()
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if cfg.Telegram.Token != "" {
		api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			log.Error("telegram init failed", "err", err)
		} else {
			var store bot.WeightStore
			if weightRepo != nil {
				store = weightRepo
			}
			b := bot.New(api, log, cfg.Telegram.AdminUserID, conv, weights, store, uomList, m)
			go func() {
				if err := b.Run(ctx, cfg.Telegram.TimeoutSec); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("bot stopped", "err", err)
				}
			}()
			log.Info("telegram bot started", "username", api.Self.UserName)
		}
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
