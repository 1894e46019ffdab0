package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"formation-service/internal/api"
	brokerPkg "formation-service/internal/broker"
	"formation-service/internal/config"
	"formation-service/internal/db"
	"formation-service/internal/db/repos"
	"formation-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	database := db.NewDB(cfg.FormationDSN)
	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	sessionRepo := repos.NewSessionRepository(database)
	reservationRepo := repos.NewReservationRepository(database)

	// The broker is optional: a reservation must never depend on the
	// notification side being up.
	var broker *brokerPkg.Broker
	var pub service.Publisher
	if cfg.RabbitURL != "" {
		broker, err = brokerPkg.NewBroker(cfg.RabbitURL, cfg.ReservationExchange)
		if err != nil {
			log.Printf("Warning: failed to create broker: %v", err)
		} else {
			pub = broker
		}
	}

	engine := service.NewReservationService(sessionRepo, reservationRepo, pub)
	handler := api.NewHandler(engine, sessionRepo)

	router := gin.Default()
	api.SetupRoutes(router, handler)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if broker != nil {
			if err := broker.Close(); err != nil {
				log.Printf("Error closing broker: %v", err)
			}
		}
		if err := database.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
		os.Exit(0)
	}()

	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
