// routes/routes.go
package routes

import (
	"net/http"
	"restaurant-api/controllers"
	"restaurant-api/middleware"
	"restaurant-api/utils"
	"time"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, authController *controllers.AuthController, menuController *controllers.MenuController, orderController *controllers.OrderController) {
	api := router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondData(w, http.StatusOK, "Restaurant API is running", map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods("GET")

	// Auth routes
	api.HandleFunc("/auth/register", authController.Register).Methods("POST")
	api.HandleFunc("/auth/login", authController.Login).Methods("POST")

	profile := api.PathPrefix("/auth/profile").Subrouter()
	profile.Use(middleware.AuthMiddleware)
	profile.HandleFunc("", authController.GetProfile).Methods("GET")
	profile.HandleFunc("", authController.UpdateProfile).Methods("PUT")

	// Public menu routes
	api.HandleFunc("/menu", menuController.GetMenuItems).Methods("GET")
	api.HandleFunc("/menu/{id}", menuController.GetMenuItemByID).Methods("GET")

	// Admin menu routes
	menuAdmin := api.PathPrefix("/menu").Subrouter()
	menuAdmin.Use(middleware.AuthMiddleware)
	menuAdmin.Use(middleware.AdminMiddleware)
	menuAdmin.HandleFunc("", menuController.CreateMenuItem).Methods("POST")
	menuAdmin.HandleFunc("/{id}", menuController.UpdateMenuItem).Methods("PUT")
	menuAdmin.HandleFunc("/{id}", menuController.DeleteMenuItem).Methods("DELETE")

	// Admin order routes; registered before /orders/{id} so the literal
	// path wins the match
	orderAdmin := api.PathPrefix("/orders").Subrouter()
	orderAdmin.Use(middleware.AuthMiddleware)
	orderAdmin.Use(middleware.AdminMiddleware)
	orderAdmin.HandleFunc("/all/admin", orderController.GetAllOrders).Methods("GET")
	orderAdmin.HandleFunc("/{id}/status", orderController.UpdateOrderStatus).Methods("PUT")

	// User order routes
	orders := api.PathPrefix("/orders").Subrouter()
	orders.Use(middleware.AuthMiddleware)
	orders.HandleFunc("", orderController.CreateOrder).Methods("POST")
	orders.HandleFunc("", orderController.GetMyOrders).Methods("GET")
	orders.HandleFunc("/{id}", orderController.GetOrderByID).Methods("GET")
}
