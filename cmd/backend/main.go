package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/storefront/internal/backend"
	"github.com/example/storefront/internal/slice/product"
)

func main() {
	port := getEnv("PORT", "8080")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("[Backend] JWT_SECRET environment variable is required")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("[Backend] JWT_SECRET must be at least 32 characters long")
	}

	srv := backend.NewServer(backend.Config{
		JWTSecret:    jwtSecret,
		SeedProducts: seedProducts(),
	})
	if err := srv.RegisterAccount("Admin User", "admin@example.com", getEnv("ADMIN_PASSWORD", "password123"), true); err != nil {
		log.Fatalf("[Backend] Failed to seed admin account: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: srv.Router(),
	}

	go func() {
		log.Println("[Backend] ========================================")
		log.Printf("[Backend] Storefront API started on :%s", port)
		log.Println("[Backend] ========================================")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[Backend] Server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Backend] Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)
}

func seedProducts() []product.Product {
	return []product.Product{
		{ID: "1", Name: "Airpods Wireless Bluetooth Headphones", Image: "/images/airpods.jpg", Brand: "Apple", Category: "Electronics", Description: "Bluetooth technology lets you connect it with compatible devices wirelessly.", Price: 8999, CountInStock: 10},
		{ID: "2", Name: "iPhone 11 Pro 256GB Memory", Image: "/images/phone.jpg", Brand: "Apple", Category: "Electronics", Description: "Introducing the iPhone 11 Pro. A transformative triple-camera system.", Price: 59999, CountInStock: 7},
		{ID: "3", Name: "Cannon EOS 80D DSLR Camera", Image: "/images/camera.jpg", Brand: "Cannon", Category: "Electronics", Description: "Characterized by versatile imaging specs.", Price: 92999, CountInStock: 5},
		{ID: "4", Name: "Sony Playstation 4 Pro White Version", Image: "/images/playstation.jpg", Brand: "Sony", Category: "Electronics", Description: "The ultimate home entertainment center.", Price: 39999, CountInStock: 11},
		{ID: "5", Name: "Logitech G-Series Gaming Mouse", Image: "/images/mouse.jpg", Brand: "Logitech", Category: "Electronics", Description: "Get a better handle on your games.", Price: 4999, CountInStock: 7},
		{ID: "6", Name: "Amazon Echo Dot 3rd Generation", Image: "/images/alexa.jpg", Brand: "Amazon", Category: "Electronics", Description: "Meet Echo Dot, our most popular smart speaker.", Price: 2999, CountInStock: 0},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
