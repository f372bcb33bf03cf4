package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"innkeep/internal/app/commands"
	billingapp "innkeep/internal/app/handlers/billing"
	quoteapp "innkeep/internal/app/handlers/quote"
	reservationapp "innkeep/internal/app/handlers/reservations"
	"innkeep/internal/app/middleware"
	appoutbox "innkeep/internal/app/outbox"
	"innkeep/internal/app/queries"
	"innkeep/internal/domain/rates"
	domainreservation "innkeep/internal/domain/reservation"
	kafkabroker "innkeep/internal/infra/broker/kafka"
	"innkeep/internal/infra/config"
	mongodb "innkeep/internal/infra/db/mongo"
	ginserver "innkeep/internal/infra/http/gin"
	"innkeep/internal/infra/obs"
	infraoutbox "innkeep/internal/infra/outbox"
	"innkeep/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app, err := buildApplication(cfg, logger)
	if err != nil {
		logger.Error("application wiring failed", "error", err)
		os.Exit(1)
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	fixturesPath := getenv("RATES_FIXTURES", filepath.Join("data", "rates.json"))
	if err := app.loadRateFixtures(ctx, fixturesPath, logger); err != nil {
		logger.Warn("rate fixtures load failed", "error", err, "path", fixturesPath)
	}

	if app.worker != nil {
		go func() {
			if err := app.worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("outbox worker stopped", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	rates    rates.Repository
	worker   *infraoutbox.Worker
	ready    func() error
}

func buildApplication(cfg config.Config, logger *slog.Logger) (application, error) {
	var (
		rateRepo        rates.Repository
		reservationRepo domainreservation.Repository
		outboxStore     appoutbox.Outbox
		worker          *infraoutbox.Worker
		ready           = func() error { return nil }
	)

	switch cfg.StorageMode {
	case "mongo":
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return application{}, fmt.Errorf("mongo connect: %w", err)
		}
		rateRepo = mongodb.NewRateProfileRepository(client.DB)
		reservationRepo = mongodb.NewReservationRepository(client.DB)
		store := infraoutbox.NewStore(client.DB)
		outboxStore = store
		ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
		if len(cfg.KafkaBrokers) > 0 {
			producer, err := kafkabroker.NewProducer(cfg.KafkaBrokers, nil)
			if err != nil {
				return application{}, fmt.Errorf("kafka producer: %w", err)
			}
			worker = &infraoutbox.Worker{
				Store:       store,
				Producer:    producer,
				Interval:    cfg.OutboxPollInterval,
				TopicPrefix: cfg.KafkaTopicPrefix,
				Backoff:     cfg.RetryBackoff,
			}
		} else {
			logger.Warn("no kafka brokers configured, outbox events will accumulate unsent")
		}
	default:
		rateRepo = memory.NewRateProfileRepository()
		reservationRepo = memory.NewReservationRepository()
		outboxStore = memory.NewOutbox()
	}

	deps := reservationapp.Deps{
		Reservations:    reservationRepo,
		Rates:           rateRepo,
		HotelCommission: cfg.HotelCommissionPercent,
		Outbox:          outboxStore,
		Encoder:         appoutbox.JSONEventEncoder{},
	}

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, reservationapp.CreateReservationCommand{}.Key(), &reservationapp.CreateReservationHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.AddRoomCommand{}.Key(), &reservationapp.AddRoomHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.RemoveRoomCommand{}.Key(), &reservationapp.RemoveRoomHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.SetRoomCountCommand{}.Key(), &reservationapp.SetRoomCountHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.ChangeDatesCommand{}.Key(), &reservationapp.ChangeDatesHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.EditNightCommand{}.Key(), &reservationapp.EditNightHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.InheritFirstNightCommand{}.Key(), &reservationapp.InheritFirstNightHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.DistributeTotalCommand{}.Key(), &reservationapp.DistributeTotalHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.UpdatePaymentCommand{}.Key(), &reservationapp.UpdatePaymentHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.FinalizeReservationCommand{}.Key(), &reservationapp.FinalizeHandler{Deps: deps})
	commands.RegisterHandler(commandBus, reservationapp.CancelReservationCommand{}.Key(), &reservationapp.CancelReservationHandler{Deps: deps})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, quoteapp.PriceStayQuery{}.Key(), &quoteapp.PriceStayHandler{
		Rates:           rateRepo,
		HotelCommission: cfg.HotelCommissionPercent,
	})
	queries.RegisterHandler(queryBus, reservationapp.GetReservationQuery{}.Key(), &reservationapp.GetReservationHandler{Reservations: reservationRepo})
	queries.RegisterHandler(queryBus, billingapp.PaymentStatusQuery{}.Key(), &billingapp.PaymentStatusHandler{Reservations: reservationRepo})

	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.Idempotency(memory.NewIdempotencyStore(), nil),
		middleware.OutboxFlush(outboxStore),
	)

	return application{
		handlers: ginserver.Handlers{
			Quote:       ginserver.QuoteHandler{Queries: queryBus},
			Reservation: ginserver.ReservationHandler{Commands: commandBusWithMiddleware, Queries: queryBus},
			Billing:     ginserver.BillingHandler{Queries: queryBus},
		},
		rates:  rateRepo,
		worker: worker,
		ready:  ready,
	}, nil
}

// loadRateFixtures seeds the rate catalog from a JSON file. Existing
// profiles win; the file is only a bootstrap for empty stores.
func (a application) loadRateFixtures(ctx context.Context, path string, logger *slog.Logger) error {
	existing, err := a.rates.List(ctx)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("rate fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures []rateFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for _, fx := range fixtures {
		profile, err := fx.toProfile()
		if err != nil {
			logger.Error("fixture invalid", "room_type", fx.RoomType, "error", err)
			continue
		}
		if err := a.rates.Save(ctx, profile); err != nil {
			logger.Error("cannot store fixture profile", "room_type", fx.RoomType, "error", err)
			continue
		}
		logger.Info("rate fixture imported", "room_type", fx.RoomType)
	}
	return nil
}

type rateFixture struct {
	RoomType       string            `json:"room_type"`
	DisplayName    string            `json:"display_name"`
	BasePrice      string            `json:"base_price"`
	RootCost       string            `json:"root_cost"`
	CommissionRate string            `json:"commission_rate"`
	Overrides      []fixtureOverride `json:"overrides"`
}

type fixtureOverride struct {
	Date           string `json:"date"`
	Price          string `json:"price"`
	RootPrice      string `json:"root_price"`
	CommissionRate string `json:"commission_rate"`
}

func (f rateFixture) toProfile() (*rates.RoomRateProfile, error) {
	basePrice, err := decimal.NewFromString(f.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("base_price: %w", err)
	}
	rootCost, err := decimal.NewFromString(f.RootCost)
	if err != nil {
		return nil, fmt.Errorf("root_cost: %w", err)
	}
	profile, err := rates.NewProfile(rates.RoomTypeID(f.RoomType), f.DisplayName, basePrice, rootCost)
	if err != nil {
		return nil, err
	}
	if f.CommissionRate != "" {
		commission, err := decimal.NewFromString(f.CommissionRate)
		if err != nil {
			return nil, fmt.Errorf("commission_rate: %w", err)
		}
		profile.CommissionRate = &commission
	}
	for _, o := range f.Overrides {
		date, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			return nil, fmt.Errorf("override date %q: %w", o.Date, err)
		}
		override := rates.RateOverride{Date: date}
		if o.Price != "" {
			price, err := decimal.NewFromString(o.Price)
			if err != nil {
				return nil, fmt.Errorf("override price: %w", err)
			}
			override.Price = &price
		}
		if o.RootPrice != "" {
			rootPrice, err := decimal.NewFromString(o.RootPrice)
			if err != nil {
				return nil, fmt.Errorf("override root_price: %w", err)
			}
			override.RootPrice = &rootPrice
		}
		if o.CommissionRate != "" {
			commission, err := decimal.NewFromString(o.CommissionRate)
			if err != nil {
				return nil, fmt.Errorf("override commission_rate: %w", err)
			}
			override.CommissionRate = &commission
		}
		profile.SetOverride(override)
	}
	return profile, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
