// main.go
package main

import (
	"context"
	"net/http"

	"clothes-share/config"
	"clothes-share/controllers"
	"clothes-share/routes"
	"clothes-share/session"
	"clothes-share/store"
	"clothes-share/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Initialize EmailService
	emailService := utils.NewEmailService(cfg.SendGridAPIKey, cfg.EmailSender)

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logrus.Fatal(err)
		}
	}()
	db := client.Database(cfg.DatabaseName)

	stores := store.New(db)
	uploader, err := utils.NewUploader(db)
	if err != nil {
		logrus.Fatal(err)
	}

	loader := &session.Loader{
		Items:     stores.Items,
		NGOs:      stores.NGOs,
		Carts:     stores.Carts,
		Wishlists: stores.Wishlists,
	}

	if !cfg.GoogleConfigured() {
		logrus.Warn("Google sign-in is not configured; only email sign-in is available")
	}

	// Initialize controllers
	c := routes.Controllers{
		Users:     controllers.NewUserController(stores.Users, emailService),
		Google:    controllers.NewGoogleController(stores.Users, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.BaseURL),
		Items:     controllers.NewItemController(stores.Items, stores.Users, stores.NGOs),
		Cart:      controllers.NewCartController(stores.Carts, stores.Wishlists, stores.Items),
		NGOs:      controllers.NewNGOController(stores.NGOs, stores.Users),
		Admin:     controllers.NewAdminController(stores.Items, stores.NGOs, emailService),
		Dashboard: controllers.NewDashboardController(stores.Users, loader),
		Uploads:   controllers.NewUploadController(uploader),
	}

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, c)

	// Start the server
	logrus.Infof("Server is running on port %s", cfg.Port)
	logrus.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
