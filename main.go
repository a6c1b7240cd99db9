package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stock-simulator/config"
	"stock-simulator/database"
	"stock-simulator/handlers"
	"stock-simulator/ledger"
	"stock-simulator/quotes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}
	if os.Getenv("ALPHA_VANTAGE_API_KEY") == "" {
		log.Fatal("ALPHA_VANTAGE_API_KEY not set")
	}

	// Initialize PostgreSQL and Redis connections.
	config.InitDB()
	config.InitRedis()

	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	defer sqlDB.Close()

	if err := database.Migrate(config.DB); err != nil {
		log.Fatal("Failed to migrate models:", err)
	}

	provider := quotes.NewAlphaVantage(os.Getenv("ALPHA_VANTAGE_API_KEY"))
	book := ledger.New(config.DB, provider, config.StartingCash())
	handlers.Setup(book, handlers.NewRedisTokenStore(config.Rdb))

	router := gin.Default()
	handlers.Routes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}
