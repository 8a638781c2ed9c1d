package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gatherhq/gather/internal/config"
	"github.com/gatherhq/gather/internal/enrich"
	"github.com/gatherhq/gather/internal/llm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ApplyEnv()

	var llmClient llm.Client
	if cfg.LLM.APIKey != "" || cfg.LLM.Provider == "ollama" {
		llmClient, err = llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
		log.Printf("LLM expansion enabled (%s / %s)", cfg.LLM.Provider, cfg.LLM.Model)
	} else {
		log.Println("No LLM API key configured, running keyword-only")
	}

	svc := enrich.NewService(llmClient, cfg.Feed.File, cfg.Feed.URL)
	go svc.Run(context.Background(), time.Duration(cfg.Feed.RefreshSeconds)*time.Second)

	port := os.Getenv("ENRICH_PORT")
	if port == "" {
		port = "8090"
	}

	r := svc.SetupRouter()
	log.Printf("Starting enrichment service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
