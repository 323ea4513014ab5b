package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"scorearena_server/config"
	"scorearena_server/log"
	"scorearena_server/routes"
	"scorearena_server/services"
	"scorearena_server/socket"
)

func run(cfg *config.Config) int {
	// Pick the persistence collaborator: DynamoDB when a table is
	// configured, otherwise in-process memory.
	var store services.MatchStore
	if cfg.MatchesTable != "" {
		log.Info("Initializing DynamoDB match store", zap.String("table", cfg.MatchesTable))
		dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
		store = &services.DynamoMatchStore{
			Dynamo: &services.DynamoService{Client: dynamoClient},
			Table:  cfg.MatchesTable,
		}
	} else {
		log.Info("No matches table configured, using in-memory store")
		store = services.NewMemoryMatchStore()
	}

	// Optional Redis mirror for out-of-process event consumers.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		log.Info("Enabling Redis event mirror", zap.String("addr", cfg.RedisAddr))
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()
	}

	// Real-time push layer.
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Error("Socket server error", zap.Error(err))
		}
	}()
	defer socketServer.Close()

	publisher := socket.NewPublisher(socketServer, redisClient)
	matchService := services.NewMatchService(store, publisher)

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to ScoreArena")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer)
	routes.RegisterMatchRoutes(r, matchService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info("Shutdown signal received, stopping server")
	case <-errChan:
		return 1
	}

	if err := httpServer.Close(); err != nil {
		log.Error("Error closing server", zap.Error(err))
	}
	log.Info("Server stopped")
	return 0
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := log.Init(cfg.IsDevelopment()); err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	os.Exit(run(cfg))
}
