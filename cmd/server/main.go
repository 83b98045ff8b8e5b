package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/routes"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/storage"
)

func main() {
	_ = godotenv.Load()

	db := storage.OpenDB()

	if os.Getenv("SEED_ON_START") == "true" {
		if err := storage.Seed(db); err != nil {
			log.Fatal("seed failed: ", err)
		}
	}

	r := routes.NewRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	addr := ":" + port
	log.Printf("Server running on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
