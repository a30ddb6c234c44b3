package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fashion_pos/api"
	"fashion_pos/internal/auth"
	"fashion_pos/internal/checkout"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8081"
	}
	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = ".pos_session.json"
	}
	delay := checkout.DefaultDelay
	if ms := os.Getenv("CHECKOUT_DELAY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= 0 {
			delay = time.Duration(v) * time.Millisecond
		}
	}

	r := gin.Default()
	api.InitRoutes(r, api.Config{
		CheckoutDelay: delay,
		MarkerStore:   auth.NewFileMarkerStore(sessionFile),
		SeedCatalog:   true,
	})

	if err := r.Run(":" + port); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
