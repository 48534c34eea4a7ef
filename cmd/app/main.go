package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripmind/cmd/fx/admin_fx"
	"tripmind/cmd/fx/ai_fx"
	"tripmind/cmd/fx/auth_fx"
	"tripmind/cmd/fx/db_fx"
	"tripmind/cmd/fx/expert_fx"
	"tripmind/cmd/fx/itinerary_fx"
	"tripmind/cmd/fx/trip_fx"
	"tripmind/internal/api/controllers"
	"tripmind/internal/infra"
	"tripmind/internal/models/db_models"
	"tripmind/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		expert_fx.Module,
		ai_fx.Module,
		admin_fx.Module,

		fx.Invoke(infra.AutoMigrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	aiController *controllers.AiController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	expertController *controllers.ExpertController,
	bookingController *controllers.BookingController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController,
		aiController,
		tripController,
		itineraryController,
		expertController,
		bookingController,
		adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	aiController *controllers.AiController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	expertController *controllers.ExpertController,
	bookingController *controllers.BookingController,
	adminController *controllers.AdminController) {

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), authController.Me)

	aiGroup := api.Group("/ai", middleware.JWTAuthMiddleware())
	aiGroup.POST("", aiController.Chat)
	aiGroup.POST("/itinerary", aiController.BuildItinerary)

	tripGroup := api.Group("/trips", middleware.JWTAuthMiddleware())
	tripGroup.POST("", tripController.SaveTrip)
	tripGroup.GET("", tripController.ListTrips)
	tripGroup.GET("/:id", tripController.GetTrip)
	tripGroup.DELETE("/:id", tripController.DeleteTrip)

	itineraryGroup := api.Group("/itineraries", middleware.JWTAuthMiddleware())
	itineraryGroup.POST("", itineraryController.SaveItinerary)
	itineraryGroup.GET("", itineraryController.ListItineraries)
	itineraryGroup.GET("/:id", itineraryController.GetItinerary)
	itineraryGroup.DELETE("/:id", itineraryController.DeleteItinerary)

	expertsGroup := api.Group("/experts")
	expertsGroup.GET("", expertController.ListExperts)
	expertsGroup.GET("/:id", expertController.GetExpert)

	expertGroup := api.Group("/expert",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(db_models.RoleExpert))
	expertGroup.PUT("/profile", expertController.UpdateOwnProfile)
	expertGroup.GET("/bookings", expertController.ListExpertBookings)
	expertGroup.PUT("/bookings/:id", expertController.UpdateBookingStatus)

	bookingGroup := api.Group("/expert-bookings", middleware.JWTAuthMiddleware())
	bookingGroup.POST("", bookingController.CreateBooking)
	bookingGroup.GET("", bookingController.ListMyBookings)

	adminGroup := api.Group("/admin",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(db_models.RoleAdmin))
	adminGroup.GET("/dashboard", adminController.GetDashboard)
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.POST("/experts", adminController.CreateExpert)
	adminGroup.GET("/experts", adminController.ListAllExperts)
	adminGroup.GET("/bookings", adminController.ListAllBookings)
	adminGroup.PUT("/experts/:id/visibility", adminController.SetExpertVisibility)
}
