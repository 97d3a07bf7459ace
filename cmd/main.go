package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/crypto/bcrypt"

	"github.com/diaryof/diary-server/database"
	"github.com/diaryof/diary-server/internal/api/grpc/healthcheck"
	grpcRouter "github.com/diaryof/diary-server/internal/api/grpc/router"
	grpcServer "github.com/diaryof/diary-server/internal/api/grpc/server"
	httpctx "github.com/diaryof/diary-server/internal/api/http/context"
	"github.com/diaryof/diary-server/internal/api/http/handler"
	httpRouter "github.com/diaryof/diary-server/internal/api/http/router"
	httpServer "github.com/diaryof/diary-server/internal/api/http/server"
	"github.com/diaryof/diary-server/internal/config"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/mailer"
	"github.com/diaryof/diary-server/internal/model"
	"github.com/diaryof/diary-server/internal/oauth/google"
	"github.com/diaryof/diary-server/internal/password"
	"github.com/diaryof/diary-server/internal/permission"
	"github.com/diaryof/diary-server/internal/repository/postgres"
	"github.com/diaryof/diary-server/internal/server"
	"github.com/diaryof/diary-server/internal/service"
	storage "github.com/diaryof/diary-server/internal/storage/minio"
	"github.com/diaryof/diary-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	shutdownTimeout = 10 * time.Second
	mailTimeout     = 10 * time.Second
	probeTimeout    = 2 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	verificationTokenRepo := postgres.NewVerificationTokenRepository(db)
	dayRepo := postgres.NewDayRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicStorageURL())
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	mailClient := mailer.NewClient(cfg.Mail.APIURL, cfg.Mail.APIKey, &http.Client{Timeout: mailTimeout})
	notifier, err := mailer.NewNotifier(mailClient, cfg.Mail.From)
	if err != nil {
		logger.Fatal("failed to initialize mailer", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	tokenService := service.NewTokenService(tokenManager, userRepo, logger)
	identityService := service.NewIdentity(
		userRepo,
		verificationTokenRepo,
		notifier,
		password.NewHasher(bcrypt.DefaultCost),
		tokenService,
		logger,
	)
	userService := service.NewUser(userRepo, storageClient, logger)
	dayService := service.NewDay(dayRepo, taskRepo, logger)
	taskService := service.NewTask(taskRepo, dayService, logger)

	var oauthProvider handler.OAuthProvider
	if cfg.Google.Enabled() {
		oauthProvider = google.New(google.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			CallbackURL:  cfg.Google.CallbackURL,
		})
	} else {
		logger.Info("Google sign-in disabled: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set")
	}

	reaper := service.NewReaper(userRepo, verificationTokenRepo, logger.Component("reaper"), cfg.Reaper.Interval)
	checker := healthcheck.NewChecker(database.NewProbe(db.SQLDB(), probeTimeout), healthcheck.DefaultInterval, logger.Component("healthcheck"))

	var background sync.WaitGroup
	background.Add(2)
	go func() {
		defer background.Done()
		reaper.Run(ctx)
	}()
	go func() {
		defer background.Done()
		checker.Run(ctx)
	}()

	api := httpRouter.New(httpRouter.Services{
		Identity: identityService,
		Users:    userService,
		Days:     dayService,
		Tasks:    taskService,
		Tokens:   tokenService,
		States:   tokenManager,
		OAuth:    oauthProvider,
	}, permission.NewDefaultPolicy(), httpctx.NewManager(), httpRouter.Options{
		CORSOrigin:      cfg.HTTP.CORSOrigin,
		RateLimitMax:    cfg.HTTP.RateLimitMax,
		OTPRateLimitMax: cfg.HTTP.OTPRateLimitMax,
		RateLimitWindow: cfg.HTTP.RateLimitWindow,
	}, logger.Component("http"))

	servers := []model.Server{
		httpServer.NewHTTPServer(api.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port)),
		grpcServer.NewGRPCServer(grpcRouter.New(checker, logger.Component("grpc")).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)),
	}

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	background.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
