package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pddtools/internal/journal"
	"pddtools/internal/repository"
)

// Seeds the template collection with the built-in diary and progress
// copy so admins can edit it in place.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	templates := repository.NewTemplateRepo(client)

	if err := templates.SetDiary(ctx, journal.DefaultDiaryTemplates()); err != nil {
		log.Fatalf("Failed to seed diary templates: %v", err)
	}
	fmt.Println("Seeded diary templates")

	if err := templates.SetProgress(ctx, journal.DefaultProgressTemplates()); err != nil {
		log.Fatalf("Failed to seed progress templates: %v", err)
	}
	fmt.Println("Seeded progress templates")
}
