package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"roombook/internal/config"
	"roombook/internal/service"
	"roombook/internal/store"
	"roombook/internal/web"
)

func main() {
	// Optional .env file; environment variables win over it
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	storeConfig := config.GetStoreConfig()
	serverConfig := config.GetServerConfig()

	// Initialize the persistent list store using the factory
	st, err := store.NewStore(storeConfig)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	// Initialize the managers
	roomService := service.NewRoomService(st)
	bookingService := service.NewBookingService(st)

	// Set up the admin pages
	webHandler, err := web.NewHandler(roomService, bookingService, serverConfig.TemplatesDir)
	if err != nil {
		log.Fatalf("Failed to initialize web handler: %v", err)
	}

	// Push a change notification to open views after any write
	roomService.RegisterUpdateCallback(webHandler.NotifyUpdate)
	bookingService.RegisterUpdateCallback(webHandler.NotifyUpdate)

	mux := http.NewServeMux()
	webHandler.SetupRoutes(mux)

	server := &http.Server{
		Addr:         ":" + serverConfig.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting roombook server on port %s", serverConfig.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// Close SSE connections before shutting down the listener
		webHandler.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
