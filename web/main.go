package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/web/server"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Environment file to load")
	port := flag.Int("port", 0, "Port to serve on (default from RAYCASTER_PORT)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	// Create and start web server
	webServer := server.NewServer(cfg)

	log.Printf("Raycaster Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
