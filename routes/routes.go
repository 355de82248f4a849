// routes/routes.go
package routes

import (
	"clothes-share/controllers"
	"clothes-share/middleware"
	"clothes-share/models"

	"github.com/gorilla/mux"
)

// Controllers bundles every handler the router mounts.
type Controllers struct {
	Users     *controllers.UserController
	Google    *controllers.GoogleController
	Items     *controllers.ItemController
	Cart      *controllers.CartController
	NGOs      *controllers.NGOController
	Admin     *controllers.AdminController
	Dashboard *controllers.DashboardController
	Uploads   *controllers.UploadController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers) {
	// Public routes
	router.HandleFunc("/register", c.Users.Register).Methods("POST")
	router.HandleFunc("/login", c.Users.Login).Methods("POST")
	router.HandleFunc("/auth/google", c.Google.Login).Methods("GET")
	router.HandleFunc("/auth/google/callback", c.Google.Callback).Methods("GET")
	router.HandleFunc("/products", c.Items.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", c.Items.GetProductByID).Methods("GET")
	router.HandleFunc("/files/{id}", c.Uploads.Serve).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", c.Users.GetProfile).Methods("GET")
	protected.HandleFunc("/auth/role", c.Users.SelectRole).Methods("POST")
	protected.HandleFunc("/dashboard", c.Dashboard.GetDashboard).Methods("GET")
	protected.HandleFunc("/upload", c.Uploads.Upload).Methods("POST")

	// Cart and wishlist routes
	protected.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	protected.HandleFunc("/cart", c.Cart.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/{itemId}", c.Cart.RemoveFromCart).Methods("DELETE")
	protected.HandleFunc("/wishlist", c.Cart.GetWishlist).Methods("GET")
	protected.HandleFunc("/wishlist/toggle", c.Cart.ToggleWishlist).Methods("POST")
	protected.HandleFunc("/checkout", c.Cart.Checkout).Methods("POST")

	// Donor routes
	donor := router.PathPrefix("/items").Subrouter()
	donor.Use(middleware.AuthMiddleware)
	donor.Use(middleware.RequireRole(models.RoleDonor))
	donor.HandleFunc("", c.Items.CreateItem).Methods("POST")
	donor.HandleFunc("", c.Items.GetMyItems).Methods("GET")

	// NGO routes
	ngo := router.PathPrefix("/ngo").Subrouter()
	ngo.Use(middleware.AuthMiddleware)
	ngo.Use(middleware.RequireRole(models.RoleNGO))
	ngo.HandleFunc("/requests", c.NGOs.CreateRequest).Methods("POST")
	ngo.HandleFunc("/requests", c.NGOs.GetMyRequest).Methods("GET")

	donations := router.PathPrefix("/donations").Subrouter()
	donations.Use(middleware.AuthMiddleware)
	donations.Use(middleware.RequireRole(models.RoleNGO))
	donations.HandleFunc("", c.Items.GetDonations).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.HandleFunc("/overview", c.Admin.Overview).Methods("GET")
	admin.HandleFunc("/items", c.Admin.ListItems).Methods("GET")
	admin.HandleFunc("/items/{id}/approve", c.Admin.ApproveItem).Methods("PUT")
	admin.HandleFunc("/items/{id}/reject", c.Admin.RejectItem).Methods("PUT")
	admin.HandleFunc("/ngos", c.Admin.ListNGOs).Methods("GET")
	admin.HandleFunc("/ngos/{id}/approve", c.Admin.ApproveNGO).Methods("PUT")
	admin.HandleFunc("/ngos/{id}/reject", c.Admin.RejectNGO).Methods("PUT")
}
