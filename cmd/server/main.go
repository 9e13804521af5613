package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/savannadrive/savanna-rentals/internal/config"
	"github.com/savannadrive/savanna-rentals/internal/db"
	"github.com/savannadrive/savanna-rentals/internal/handlers"
	"github.com/savannadrive/savanna-rentals/internal/imagehost"
	"github.com/savannadrive/savanna-rentals/internal/middleware"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.ReadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to read config")
	}

	client, err := db.ConnectMongo(cfg.Mongo.URI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("mongo disconnect failed")
		}
	}()
	log.Info("connected to MongoDB")

	database := client.Database(cfg.Mongo.Database)
	cars := &db.MongoCarCollection{Collection: database.Collection(db.CarsCollection)}
	categories := &db.MongoCategoryCollection{Collection: database.Collection(db.CategoriesCollection)}
	bookings := &db.MongoBookingCollection{Collection: database.Collection(db.BookingsCollection)}

	images := imagehost.NewHTTPUploader(cfg.ImageHost.UploadURL, cfg.ImageHost.UploadPreset)

	carHandler := handlers.NewCarHandler(cars, images)
	categoryHandler := handlers.NewCategoryHandler(categories, images)
	bookingHandler := handlers.NewBookingHandler(bookings, cars)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handlers.Health)
	mux.HandleFunc("GET /api/cars", carHandler.List)
	mux.HandleFunc("POST /api/cars", carHandler.Create)
	mux.HandleFunc("GET /api/cars/{id}", carHandler.Get)
	mux.HandleFunc("GET /api/carcategory", categoryHandler.List)
	mux.HandleFunc("POST /api/carcategory", categoryHandler.Create)
	mux.HandleFunc("POST /api/bookings", bookingHandler.Create)
	mux.HandleFunc("GET /api/bookings/{id}", bookingHandler.Get)
	mux.HandleFunc("PATCH /api/bookings/{id}", bookingHandler.UpdateStatus)
	mux.HandleFunc("POST /api/bookings/{id}/cancel", bookingHandler.Cancel)

	handler := middleware.Recover(middleware.Logging(middleware.CORS(mux)))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
