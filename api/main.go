package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/pubstock/internal/config"
	"github.com/rogerio-castellano/pubstock/internal/db"
	api "github.com/rogerio-castellano/pubstock/internal/http"
	"github.com/rogerio-castellano/pubstock/internal/http/handlers"
	rl "github.com/rogerio-castellano/pubstock/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pubstock/internal/inventory"
	"github.com/rogerio-castellano/pubstock/internal/notify"
	"github.com/rogerio-castellano/pubstock/internal/order"
	"github.com/rogerio-castellano/pubstock/internal/repo"
	"github.com/rogerio-castellano/pubstock/internal/ui"
)

// @title PubStock Manager API
// @version 1.0
// @description REST API for managing the stock of a pub and generating supplier orders.
// @host localhost:8080
// @BasePath /
func main() {
	configFile := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	productRepo, closeRepo := openRepository(ctx, cfg)
	defer closeRepo()

	hub := notify.NewHub(0)
	notifiers := notify.Multi{hub}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		notifiers = append(notifiers, notify.NewRedisPublisher(rdb, cfg.Redis.Channel))
	}

	if cfg.AMQP.URL != "" {
		conn, err := amqp.Dial(cfg.AMQP.URL)
		if err != nil {
			log.Fatalf("Could not connect to RabbitMQ: %v", err)
		}
		defer conn.Close()
		publisher, err := notify.NewAMQPPublisher(conn, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatalf("Could not open RabbitMQ channel: %v", err)
		}
		defer publisher.Close()
		notifiers = append(notifiers, publisher)
	}

	store := inventory.NewStore(productRepo, notifiers)
	if err := store.Load(ctx); err != nil {
		log.Printf("⚠️ Initial load failed, serving an empty inventory: %v", err)
	}

	handlers.SetStore(store)
	handlers.SetHub(hub)
	handlers.SetSession(ui.NewSession())
	handlers.SetCurrencySymbol(cfg.Order.CurrencySymbol)
	handlers.SetGenerator(order.NewGenerator(order.Options{
		Title:          cfg.Order.Title,
		CurrencySymbol: cfg.Order.CurrencySymbol,
		DateLayout:     cfg.Order.DateLayout,
	}, notifiers))

	limiter := rl.New(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop(ctx)
	api.SetRateLimiter(limiter)

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: api.NewRouter()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("✅ Server running on %s (store: %s)", cfg.HTTP.Addr, cfg.Store.Driver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func openRepository(ctx context.Context, cfg config.Config) (repo.ProductRepository, func()) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal("❌ Could not connect to database:", err)
		}
		r := repo.NewPostgresProductRepository(database)
		if err := r.EnsureSchema(ctx); err != nil {
			log.Fatal("❌ Could not prepare products table:", err)
		}
		return r, func() { database.Close() }
	case config.DriverREST:
		return repo.NewRESTProductRepository(repo.RESTConfig{
			BaseURL:       cfg.REST.URL,
			Table:         cfg.REST.Table,
			APIKey:        cfg.REST.APIKey,
			JWTSecret:     cfg.REST.JWTSecret,
			Role:          cfg.REST.Role,
			RatePerSecond: cfg.REST.RatePerSecond,
			Burst:         cfg.REST.Burst,
			Timeout:       cfg.REST.Timeout,
		}, nil), func() {}
	default:
		return repo.NewInMemoryProductRepository(), func() {}
	}
}
