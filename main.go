package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/meinwort/meinwort-go/config"
	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/middleware"
	"github.com/meinwort/meinwort-go/routes"
	"github.com/meinwort/meinwort-go/storage"
)

// @title MeinWort API
// @version 1.0
// @description Civic petition platform backend
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	store := storage.NewMinioStore()

	catalog, err := config.LoadCatalog(config.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, store, catalog)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
