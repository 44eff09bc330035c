package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripforge/cmd/fx/account_fx"
	"tripforge/cmd/fx/ai_fx"
	"tripforge/cmd/fx/catalog_fx"
	"tripforge/cmd/fx/db_fx"
	"tripforge/cmd/fx/itinerary_fx"
	"tripforge/cmd/fx/planner_fx"
	"tripforge/internal/api/controllers"
	"tripforge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		ai_fx.Module,
		planner_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,

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
				log.Printf("Starting HTTP server on :%s", port)
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
	plannerController *controllers.PlannerController,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, accountController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) {

	plannerGroup := r.Group("/planner")
	plannerGroup.POST("/generate", plannerController.GeneratePlanHandler)
	plannerGroup.POST("/chat", plannerController.ChatPlanHandler)
	plannerGroup.POST("/parse", plannerController.ParseQueryHandler)
	plannerGroup.GET("/destinations", plannerController.ListDestinationsHandler)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/signup", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/all", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), accountController.GetAllAccounts)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.Use(middleware.JWTAuthMiddleware())
	itineraryGroup.POST("", itineraryController.SaveItineraryHandler)
	itineraryGroup.GET("", itineraryController.ListItinerariesHandler)
	itineraryGroup.GET("/:id", itineraryController.GetItineraryHandler)
	itineraryGroup.DELETE("/:id", itineraryController.DeleteItineraryHandler)
	itineraryGroup.POST("/:id/share", itineraryController.ShareItineraryHandler)
	itineraryGroup.GET("/:id/related", itineraryController.RelatedItinerariesHandler)
	itineraryGroup.GET("/:id/export", itineraryController.ExportItineraryHandler)

	r.GET("/shared/:id", itineraryController.GetSharedItineraryHandler)
}
