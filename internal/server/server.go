// Package server boots the application: configuration, connections,
// dependency wiring, the HTTP and gRPC listeners and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/adityakr/bazaari/app/catalog"
	"github.com/adityakr/bazaari/app/controllers"
	"github.com/adityakr/bazaari/app/graph"
	"github.com/adityakr/bazaari/app/jobs"
	"github.com/adityakr/bazaari/app/orders"
	"github.com/adityakr/bazaari/app/repositories"
	"github.com/adityakr/bazaari/app/routes"
	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/app/shop"
	"github.com/adityakr/bazaari/config"
	"github.com/adityakr/bazaari/database/migrations"
	"github.com/adityakr/bazaari/pkg/auth"
	"github.com/adityakr/bazaari/pkg/cache"
	"github.com/adityakr/bazaari/pkg/event"
	pkggrpc "github.com/adityakr/bazaari/pkg/grpc"
	"github.com/adityakr/bazaari/pkg/logger"
	"github.com/adityakr/bazaari/pkg/mail"
	"github.com/adityakr/bazaari/pkg/metrics"
	"github.com/adityakr/bazaari/pkg/middleware"
	"github.com/adityakr/bazaari/pkg/migration"
	"github.com/adityakr/bazaari/pkg/mongodb"
	"github.com/adityakr/bazaari/pkg/notification"
	"github.com/adityakr/bazaari/pkg/queue"
	"github.com/adityakr/bazaari/pkg/reqid"
	"github.com/adityakr/bazaari/pkg/router"
	"github.com/adityakr/bazaari/pkg/schedule"
	"github.com/adityakr/bazaari/pkg/session"
	"github.com/adityakr/bazaari/pkg/storage"
	"github.com/adityakr/bazaari/pkg/workerpool"
	"github.com/adityakr/bazaari/pkg/ws"
)

// Run boots everything and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := mongodb.Connect(); err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongodb.Disconnect(ctx)
	}()

	// Redis is optional; session and queue fall back to memory without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, using in-memory fallbacks", "error", err)
	}

	// Fan application logs out to Mongo when asked, alongside stdout.
	if config.Get("LOG_TO_MONGO", "") == "true" {
		mh, err := logger.NewMongoHandler(config.MongoURI(), config.MongoDB(), "logs")
		if err != nil {
			logger.Warn("mongo log handler unavailable", "error", err)
		} else {
			defer mh.Close()
			logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), mh))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migration.Apply(ctx, migrations.All()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	disk, err := storage.NewFromConfig(ctx)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// ─── Wiring ──────────────────────────────────────────────────────────

	productRepo := repositories.NewProductRepository()
	userRepo := repositories.NewUserRepository()
	orderRepo := repositories.NewOrderRepository()
	reviewRepo := repositories.NewReviewRepository()

	store := catalog.NewStore(nil)
	catalogSvc := services.NewCatalogService(productRepo, store)
	if err := catalogSvc.Warm(ctx); err != nil {
		return fmt.Errorf("warm catalogue: %w", err)
	}

	shops := shop.NewManager()
	sessions := session.NewManager(session.NewStore(), config.AppEnv() == "production")
	verifier := auth.NewVerifier()
	hub := ws.NewHub()
	journal := orders.NewJournal()

	authSvc := services.NewAuthService(userRepo, verifier, sessions, shops)
	orderSvc := services.NewOrderService(orderRepo, journal, hub)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo, userRepo)
	aiSvc := services.NewAIService()

	// Background jobs.
	pool := workerpool.New(4, 64)
	q := queue.NewFromConfig(pool, queue.NewMongoFailureSink())
	notifier := notification.New(mail.NewFromConfig())
	jobs.RegisterOrderConfirmation(userRepo, notifier)
	event.Listen(services.EventOrderPlaced, func(payload interface{}) {
		if err := q.Dispatch(context.Background(), jobs.OrderConfirmationJob, payload); err != nil {
			logger.Error("dispatch order confirmation", "error", err)
		}
	})
	go q.Work(ctx)

	// Periodic upkeep.
	sched := schedule.New().
		Every(5*time.Minute, "catalog:warm", func(ctx context.Context) {
			if err := catalogSvc.Warm(ctx); err != nil {
				logger.Error("catalogue warm failed", "error", err)
			}
		}).
		Every(15*time.Minute, "shop:evict-idle", func(ctx context.Context) {
			if n := shops.EvictIdle(); n > 0 {
				logger.Info("idle shopping sessions evicted", "count", n)
			}
			metrics.ActiveSessions.Set(float64(shops.Count()))
		})
	sched.Start()

	schema, err := graph.NewSchema(store)
	if err != nil {
		return fmt.Errorf("build graphql schema: %w", err)
	}

	// ─── HTTP ────────────────────────────────────────────────────────────

	r := newRouter(sessions)
	routes.Register(r, routes.Controllers{
		Products: controllers.NewProductController(catalogSvc, productRepo, aiSvc, disk),
		Auth:     controllers.NewAuthController(authSvc),
		Cart:     controllers.NewCartController(catalogSvc, shops),
		Wishlist: controllers.NewWishlistController(catalogSvc, shops),
		Orders:   controllers.NewOrderController(orderSvc, shops),
		Reviews:  controllers.NewReviewController(reviewSvc),
		Schema:   schema,
		Hub:      hub,
	})

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcSrv := pkggrpc.NewServer()
	grpcSrv.SetServing("", true)

	errCh := make(chan error, 2)
	go func() {
		logger.Info("http server listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := grpcSrv.Serve(":" + config.GRPCPort()); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	// ─── Graceful shutdown ───────────────────────────────────────────────

	grpcSrv.SetServing("", false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	grpcSrv.Stop()

	sched.Stop()
	q.Stop()
	pool.Stop()
	event.Flush()

	logger.Info("server stopped")
	return nil
}

// Routes builds the route table without opening any connections, for the
// route:list command.
func Routes() []router.RouteInfo {
	store := catalog.NewStore(nil)
	productRepo := repositories.NewProductRepository()
	userRepo := repositories.NewUserRepository()
	catalogSvc := services.NewCatalogService(productRepo, store)
	shops := shop.NewManager()
	sessions := session.NewManager(session.NewMemoryStore(), false)
	journal := orders.NewJournal()
	hub := ws.NewHub()

	schema, _ := graph.NewSchema(store)
	disk := storage.NewLocalDisk("storage/app", "/storage")

	r := router.New()
	routes.Register(r, routes.Controllers{
		Products: controllers.NewProductController(catalogSvc, productRepo, services.NewAIService(), disk),
		Auth:     controllers.NewAuthController(services.NewAuthService(userRepo, auth.NewVerifier(), sessions, shops)),
		Cart:     controllers.NewCartController(catalogSvc, shops),
		Wishlist: controllers.NewWishlistController(catalogSvc, shops),
		Orders:   controllers.NewOrderController(services.NewOrderService(repositories.NewOrderRepository(), journal, hub), shops),
		Reviews:  controllers.NewReviewController(services.NewReviewService(repositories.NewReviewRepository(), productRepo, userRepo)),
		Schema:   schema,
		Hub:      hub,
	})
	return r.Routes()
}

// newRouter assembles the middleware stack, outermost first.
func newRouter(sessions *session.Manager) *router.Router {
	r := router.New()
	r.Use(
		metrics.Middleware,
		middleware.Recover,
		reqid.Middleware,
		middleware.Logger,
		sessions.Middleware,
		middleware.CORS,
		middleware.RateLimit(300),
	)
	return r
}
