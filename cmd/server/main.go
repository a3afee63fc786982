package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/config"
	adminH "github.com/nextgencodex-com/Vengase-backend/internal/admin/handler"
	adminRepoPkg "github.com/nextgencodex-com/Vengase-backend/internal/admin/repository"
	adminUCPkg "github.com/nextgencodex-com/Vengase-backend/internal/admin/usecase"
	"github.com/nextgencodex-com/Vengase-backend/internal/auth"
	catH "github.com/nextgencodex-com/Vengase-backend/internal/category/handler"
	catRepoPkg "github.com/nextgencodex-com/Vengase-backend/internal/category/repository"
	catUCPkg "github.com/nextgencodex-com/Vengase-backend/internal/category/usecase"
	orderH "github.com/nextgencodex-com/Vengase-backend/internal/order/handler"
	orderRepoPkg "github.com/nextgencodex-com/Vengase-backend/internal/order/repository"
	orderUCPkg "github.com/nextgencodex-com/Vengase-backend/internal/order/usecase"
	"github.com/nextgencodex-com/Vengase-backend/internal/platform/firebase"
	prodH "github.com/nextgencodex-com/Vengase-backend/internal/product/handler"
	prodRepoPkg "github.com/nextgencodex-com/Vengase-backend/internal/product/repository"
	prodUCPkg "github.com/nextgencodex-com/Vengase-backend/internal/product/usecase"
	"github.com/nextgencodex-com/Vengase-backend/internal/sequence"
	"github.com/nextgencodex-com/Vengase-backend/internal/server"
	"github.com/nextgencodex-com/Vengase-backend/internal/upload"
	userH "github.com/nextgencodex-com/Vengase-backend/internal/user/handler"
	userRepoPkg "github.com/nextgencodex-com/Vengase-backend/internal/user/repository"
	userUCPkg "github.com/nextgencodex-com/Vengase-backend/internal/user/usecase"
	"github.com/nextgencodex-com/Vengase-backend/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "vengase-backend",
		Usage: "e-commerce API server",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API server",
				Action: runServe,
			},
			{
				Name:   "init-categories",
				Usage:  "seed the default category documents and exit",
				Action: runInitCategories,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, *firebase.Clients, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadEnv()
	if err != nil {
		return nil, nil, nil, err
	}

	logConfig := &logger.Config{
		IsDevelopment:     !cfg.IsProduction(),
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.NewZapLogger(logConfig)

	clients, err := firebase.NewClients(ctx, &cfg.Firebase)
	if err != nil {
		return nil, nil, nil, err
	}
	appLogger.Info("Connected to Firebase",
		zap.String("project", cfg.Firebase.ProjectID),
		zap.Bool("storage", clients.Bucket != nil))

	return cfg, appLogger, clients, nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	cfg, appLogger, clients, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer appLogger.Sync()
	defer clients.Close()

	dev := !cfg.IsProduction()

	// Repositories
	prodRepo := prodRepoPkg.NewFSRepository(clients.Firestore)
	catRepo := catRepoPkg.NewFSRepository(clients.Firestore)
	orderRepo := orderRepoPkg.NewFSRepository(clients.Firestore)
	userRepo := userRepoPkg.NewFSRepository(clients.Firestore)
	adminRepo := adminRepoPkg.NewFSRepository(clients.Firestore)

	// Platform services
	identity := firebase.NewIdentity(clients.Auth)
	allocator := sequence.NewAllocator(prodRepo, orderRepo, appLogger)
	uploadSvc := upload.NewService(&cfg.Upload, clients.Bucket, appLogger)
	if err := uploadSvc.EnsureDir(); err != nil {
		appLogger.Warn("could not create image directory", zap.Error(err))
	}

	// UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, allocator, uploadSvc, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, prodRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, allocator, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, appLogger)
	adminUC := adminUCPkg.NewAdminUseCase(adminRepo, identity, userUC, orderUC, appLogger)

	// Handlers
	handlers := &server.Handlers{
		Products:   prodH.NewProductHandler(prodUC, appLogger, dev),
		Categories: catH.NewCategoryHandler(catUC, appLogger, dev),
		Orders:     orderH.NewOrderHandler(orderUC, appLogger, dev),
		Users:      userH.NewUserHandler(userUC, appLogger, dev),
		Admins:     adminH.NewAdminHandler(adminUC, identity, appLogger, dev),
		Uploads:    upload.NewHandler(uploadSvc, cfg.Upload.MaxSizeMB, cfg.Upload.MaxPerBatch, appLogger, dev),
	}

	authmw := auth.NewMiddleware(identity, identity, cfg.Admin.Emails, appLogger)
	limiter := server.NewRateLimiter(&cfg.RateLimit, appLogger)
	defer limiter.Stop()

	router := server.NewRouter(cfg, handlers, authmw, limiter)

	port := cfg.Server.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
	return nil
}

func runInitCategories(c *cli.Context) error {
	ctx := c.Context

	_, appLogger, clients, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer appLogger.Sync()
	defer clients.Close()

	catRepo := catRepoPkg.NewFSRepository(clients.Firestore)
	prodRepo := prodRepoPkg.NewFSRepository(clients.Firestore)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, prodRepo, appLogger)

	result, err := catUC.InitializeDefaults(ctx)
	if err != nil {
		return err
	}
	appLogger.Info("Default categories initialized", zap.Int("added", result.Added))
	return nil
}
