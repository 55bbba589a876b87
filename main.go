package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	catalog "marketplace/internal/catalogService"
	"marketplace/internal/config"
	conversation "marketplace/internal/conversationService"
	"marketplace/internal/database"
	"marketplace/internal/repository"
	"marketplace/internal/server"
	"marketplace/internal/storage"
	"marketplace/utils"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("MARKETPLACE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}

	catalogRepo := repository.NewGormCatalogRepo(db)
	conversationRepo := repository.NewGormConversationRepo(db)
	fileStore := storage.NewDiskStore(cfg.Uploads.Dir)

	catalogSvc := catalog.NewCatalogService(catalogRepo, fileStore)
	conversationSvc := conversation.NewConversationService(conversationRepo, catalogRepo)

	router := server.SetupRouter(catalogSvc, conversationSvc)

	addr := cfg.Server.Addr()
	utils.Info("starting marketplace server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
