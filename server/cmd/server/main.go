package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/carllapierre/foodfight/registry"
	"github.com/carllapierre/foodfight/server/core"
	"github.com/carllapierre/foodfight/server/store"
	"github.com/carllapierre/foodfight/shared/protocol"
)

func main() {
	config, err := core.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override the environment.
	port := flag.Uint("port", config.Port, "Server port")
	tickRate := flag.Int("tickrate", config.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", config.Name, "Server display name")
	version := flag.String("version", config.Version, "Required client version (empty = accept any)")
	worldPath := flag.String("world", config.WorldPath, "World file (world.json)")
	itemsPath := flag.String("items", config.ItemsPath, "Item table YAML (empty = builtin items)")
	statsDB := flag.String("statsdb", config.StatsDB, "SQLite stats database (empty = no persistence)")
	maxPlayers := flag.Int("maxplayers", config.MaxPlayers, "Maximum concurrent players")
	flag.Parse()

	config.Port = *port
	config.TickRate = *tickRate
	config.Name = *name
	config.Version = *version
	config.WorldPath = *worldPath
	config.ItemsPath = *itemsPath
	config.StatsDB = *statsDB
	config.MaxPlayers = *maxPlayers

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	items := registry.Default()
	if config.ItemsPath != "" {
		stopWatch, err := items.WatchFile(config.ItemsPath)
		if err != nil {
			log.Fatalf("Failed to load item table: %v", err)
		}
		defer stopWatch()
		log.Printf("Watching item table %s (%d items)", config.ItemsPath, items.Len())
	}

	var stats core.StatsStore
	if config.StatsDB != "" {
		st, err := store.Open(config.StatsDB)
		if err != nil {
			log.Fatalf("Failed to open stats db: %v", err)
		}
		defer st.Close()
		stats = st
	}

	level := core.LoadLevel(config.WorldPath)
	server := core.NewServer(config, level, items, stats)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting %q on port %d (tick rate: %d/s, version: %q)",
		config.Name, config.Port, config.TickRate, config.Version)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
