package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gatherhq/gather/internal/config"
	"github.com/gatherhq/gather/internal/ingest"
	"github.com/gatherhq/gather/internal/search"
	"github.com/gatherhq/gather/internal/server"
	"github.com/gatherhq/gather/internal/store"
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

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open store at %s: %v", cfg.Store.Path, err)
	}
	defer st.Close()

	seeder := ingest.NewSeeder(st)
	seedCatalog(st, seeder, cfg)

	if cfg.Feed.URL != "" && cfg.Feed.RefreshSeconds > 0 {
		refresher := ingest.NewRefresher(seeder, cfg.Feed.URL,
			time.Duration(cfg.Feed.RefreshSeconds)*time.Second)
		go refresher.Run(context.Background())
	}

	var remote *search.RemoteClient
	if cfg.Enrich.BaseURL != "" {
		remote = search.NewRemoteClient(cfg.Enrich.BaseURL, cfg.Enrich.Top,
			time.Duration(cfg.Enrich.TimeoutSeconds)*time.Second)
	}

	srv := server.NewServer(st, search.NewExtractor(remote), cfg.Enrich.NoLLM)
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}

// seedCatalog fills an empty catalog from the feed file, falling back to the
// built-in showcase events so a fresh install is never blank.
func seedCatalog(st *store.Store, seeder *ingest.Seeder, cfg *config.Config) {
	n, err := st.CountEvents()
	if err != nil {
		log.Fatalf("Failed to count events: %v", err)
	}
	if n > 0 {
		log.Printf("Catalog already has %d events", n)
		return
	}

	if cfg.Feed.File != "" {
		feed, err := ingest.LoadFeedFile(cfg.Feed.File)
		if err == nil {
			added, err := seeder.Seed(feed.Events)
			if err != nil {
				log.Fatalf("Failed to seed catalog: %v", err)
			}
			log.Printf("Seeded %d events from %s", added, cfg.Feed.File)
			return
		}
		log.Printf("Feed file unavailable (%v), using fallback events", err)
	}

	added, err := st.InsertEvents(ingest.FallbackEvents())
	if err != nil {
		log.Fatalf("Failed to seed fallback events: %v", err)
	}
	log.Printf("Seeded %d fallback events", added)
}
