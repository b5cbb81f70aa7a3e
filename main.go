package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"listing-studio/internal/images"
	listing "listing-studio/internal/listingService"
	"listing-studio/internal/repository"
	"listing-studio/internal/server"
	"listing-studio/utils"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	repo := repository.NewMemoryRepo()

	host := images.NewHost(os.Getenv("IMAGE_HOST_ENDPOINT"), os.Getenv("IMAGE_HOST_API_KEY"))

	listingService := listing.NewListingService(repo, repo)

	router := server.SetupRouter(listingService, host)

	port := getPort()
	utils.Info("starting listing server", map[string]any{"port": port})
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
