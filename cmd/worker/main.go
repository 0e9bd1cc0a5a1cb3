package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/talentbase/talentbase/adapters/event"
	"github.com/talentbase/talentbase/adapters/persistence"
	logUC "github.com/talentbase/talentbase/internal/application/usecase/activitylog"
	"github.com/talentbase/talentbase/internal/config"
	"github.com/talentbase/talentbase/pkg/logger"
)

func main() {
	fmt.Println("Starting TalentBase Worker...")

	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	// Repositories
	activityLogRepo := persistence.NewPostgresActivityLogRepo(dbPool)

	// Worker Use Case
	processEventUC := logUC.NewProcessProfileEventUseCase(activityLogRepo, appLogger)

	// Kafka Consumer
	profileConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "profile-event-logger-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer profileConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicProfileEvents)

	ctx := context.Background()
	for {
		msg, err := profileConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var payload event.ProfileEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(profileConsumer, msg)
			continue
		}

		log.Printf("Processing event: [%s] for ProfileID: %s", payload.EventType, payload.ProfileID)

		if err := processEventUC.Execute(ctx, payload); err != nil {
			log.Printf("ERROR: Failed to process event for ProfileID %s: %v", payload.ProfileID, err)
			continue
		}

		commitMessage(profileConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
