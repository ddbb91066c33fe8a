// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"restaurant-api/controllers"
	"restaurant-api/middleware"
	"restaurant-api/routes"
	"restaurant-api/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Seed the admin account and sample menu
	seedInitialData(client)

	// Initialize controllers
	authController := controllers.NewAuthController(client)
	menuController := controllers.NewMenuController(client)
	orderController := controllers.NewOrderController(client, emailService)

	// Set up the router
	router := mux.NewRouter()

	// Register routes
	routes.RegisterRoutes(router, authController, menuController, orderController)

	// Start the server. CORS wraps the router so preflight requests are
	// answered even for paths mux would not match.
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, middleware.CORSMiddleware(router)))
}
