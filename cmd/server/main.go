package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/common/uuid"
	"github.com/hueylin/groupballot/internal/config"
	httpHandler "github.com/hueylin/groupballot/internal/handlers/http"
	adminRepo "github.com/hueylin/groupballot/internal/repositories/admin"
	ballotRepo "github.com/hueylin/groupballot/internal/repositories/ballot"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	participantRepo "github.com/hueylin/groupballot/internal/repositories/participant"
	sessionRepo "github.com/hueylin/groupballot/internal/repositories/session"
	"github.com/hueylin/groupballot/internal/rng"
	authService "github.com/hueylin/groupballot/internal/services/auth"
	ballotService "github.com/hueylin/groupballot/internal/services/ballot"
	groupsService "github.com/hueylin/groupballot/internal/services/groups"
	registryService "github.com/hueylin/groupballot/internal/services/registry"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
	statsService "github.com/hueylin/groupballot/internal/services/stats"
	"github.com/hueylin/groupballot/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger.Init(cfg.LogLevel)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	sessionRepository, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Session repository error: %v", err)
	}

	participantRepository, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Participant repository error: %v", err)
	}

	groupRepository, err := groupRepo.NewRedis(&groupRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Group repository error: %v", err)
	}

	ballotRepository, err := ballotRepo.NewRedis(&ballotRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Ballot repository error: %v", err)
	}

	adminRepository, err := adminRepo.NewRedis(&adminRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Admin repository error: %v", err)
	}

	systemClock := &clock.DefaultClock{}
	uuidGenerator := uuid.New()
	randomSource := rng.New(&rng.Config{})

	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo:   sessionRepository,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Session service error: %v", err)
	}

	registrySvc, err := registryService.New(&registryService.Config{
		ParticipantRepo: participantRepository,
		GroupRepo:       groupRepository,
		SessionService:  sessionSvc,
		Clock:           systemClock,
	})
	if err != nil {
		log.Fatalf("Registry service error: %v", err)
	}

	groupsSvc, err := groupsService.New(&groupsService.Config{
		GroupRepo:       groupRepository,
		ParticipantRepo: participantRepository,
		SessionService:  sessionSvc,
		Clock:           systemClock,
		UUIDGenerator:   uuidGenerator,
		Rand:            randomSource,
	})
	if err != nil {
		log.Fatalf("Groups service error: %v", err)
	}

	ballotSvc, err := ballotService.New(&ballotService.Config{
		GroupRepo:      groupRepository,
		BallotRepo:     ballotRepository,
		SessionService: sessionSvc,
		Clock:          systemClock,
		Rand:           randomSource,
	})
	if err != nil {
		log.Fatalf("Ballot service error: %v", err)
	}

	statsSvc, err := statsService.New(&statsService.Config{
		ParticipantRepo: participantRepository,
		GroupRepo:       groupRepository,
		BallotRepo:      ballotRepository,
		SessionService:  sessionSvc,
	})
	if err != nil {
		log.Fatalf("Stats service error: %v", err)
	}

	authSvc, err := authService.New(&authService.Config{
		AdminRepo: adminRepository,
		Clock:     systemClock,
		JWTSecret: cfg.JWTSecret,
	})
	if err != nil {
		log.Fatalf("Auth service error: %v", err)
	}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		_, err := authSvc.EnsureAdmin(context.Background(), &authService.CreateAdminInput{
			Username:  cfg.AdminUsername,
			Password:  cfg.AdminPassword,
			CreatedBy: "bootstrap",
		})
		if err != nil {
			log.Fatalf("Admin bootstrap error: %v", err)
		}
	}

	handler, err := httpHandler.NewHandler(&httpHandler.Config{
		AuthService:     authSvc,
		SessionService:  sessionSvc,
		RegistryService: registrySvc,
		GroupsService:   groupsSvc,
		BallotService:   ballotSvc,
		StatsService:    statsSvc,
		JWTSecret:       cfg.JWTSecret,
	})
	if err != nil {
		log.Fatalf("Handler error: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Group Ballot API",
		ErrorHandler: httpHandler.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	api := app.Group("/api/v1")
	handler.RegisterRoutes(api)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Infof("Server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Errorf("Redis close error: %v", err)
	}
	log.Info("Server stopped gracefully")
}
