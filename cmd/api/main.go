package main

import (
	"context"
	"log"
	"time"

	"chatapp/config"
	"chatapp/internal/handler"
	"chatapp/internal/otp"
	"chatapp/internal/repository"
	"chatapp/internal/server"
	"chatapp/internal/services"
	"chatapp/internal/sms"
	"chatapp/pkg/database"
	"chatapp/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.MongoDBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	var otpStore otp.Store = otp.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		otpStore = otp.NewRedisStore(redisClient)
		l.Infof("Using Redis OTP store at %s", cfg.RedisAddr)
	}

	smsClient := sms.NewTwilioClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)

	authService := services.NewAuthService(userRepo, otpStore, smsClient, cfg)
	chatService := services.NewChatService(chatRepo, userRepo)

	handlers := &server.Handlers{
		Auth: handler.NewAuthHandler(authService, l),
		Chat: handler.NewChatHandler(chatService, l),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, client)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
