// @title           Aquecimento API
// @version         1.0
// @description     Water-heating proposal backend - sizing, catalogs and proposals.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "backend/docs"
	"backend/handlers"
	"backend/repository"
	"backend/services"
	"backend/sizing"
	"backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, origin)
	}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	return corsConfig
}

func main() {
	db := storage.InitDB()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure database schema:", err)
	}

	gdb := storage.InitGormDB()

	// The engine reads climate from the city tables and equipment from the
	// catalog tables (with factory fallbacks).
	catalogRepo := repository.NewCatalogRepository(db)
	if err := catalogRepo.SeedCatalogs(context.Background()); err != nil {
		log.Println("Warning: failed to seed catalogs:", err)
	}
	engine := &sizing.Engine{
		Climate:    repository.NewClimateRepository(db),
		Machines:   catalogRepo,
		GasHeaters: catalogRepo,
		Collectors: catalogRepo,
	}
	proposalSvc := services.NewProposalService(gdb, engine)

	// Expired-session cleanup.
	cronLogger := log.New(os.Stdout, "cron: ", log.LstdFlags)
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		removed, err := storage.DeleteExpiredSessions(db)
		if err != nil {
			cronLogger.Printf("session cleanup failed: %v", err)
			return
		}
		if removed > 0 {
			cronLogger.Printf("removed %d expired sessions", removed)
		}
	}); err != nil {
		log.Fatal("Failed to schedule session cleanup:", err)
	}
	c.Start()
	defer c.Stop()

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	// Authentication
	r.POST("/api/login", handlers.LoginHandler(db))
	r.POST("/api/refresh", handlers.RefreshTokenHandler(db))
	r.POST("/api/logout/:session_id", handlers.LogoutHandler(db))
	r.POST("/api/validate-session", handlers.ValidateSession())

	// Stateless sizing (live figures while the form is being filled)
	r.POST("/api/sizing/pool", handlers.ComputePoolSizing(engine))
	r.POST("/api/sizing/residential", handlers.ComputeResidentialSizing(engine))
	r.POST("/api/sizing/machines/energy", handlers.ComputeMachineEnergy())

	// Cities and climate
	r.GET("/api/cities", handlers.GetCities(db))
	r.GET("/api/cities/search", handlers.FindCityByName(db))
	r.GET("/api/cities/:id/climate", handlers.GetCityClimate(db))

	// Catalogs
	r.GET("/api/catalogs/machines", handlers.GetMachineCatalog(db))
	r.GET("/api/catalogs/gas-heaters", handlers.GetGasHeaterCatalog(db))
	r.GET("/api/catalogs/solar-collectors", handlers.GetSolarCollectorCatalog(db))

	// Protected routes
	auth := r.Group("/", handlers.RequireAuth())
	auth.POST("/api/cities", handlers.CreateCity(db))
	auth.PUT("/api/cities/:id/climate", handlers.UpsertCityClimate(db))
	auth.DELETE("/api/cities/:id", handlers.DeleteCity(db))

	auth.POST("/api/proposals", handlers.CreateProposal(proposalSvc))
	auth.GET("/api/proposals", handlers.GetProposals(proposalSvc))
	auth.GET("/api/proposals/export", handlers.ExportProposalsExcel(proposalSvc))
	auth.GET("/api/proposals/:id", handlers.GetProposalByID(proposalSvc))
	auth.PUT("/api/proposals/:id", handlers.UpdateProposal(proposalSvc))
	auth.POST("/api/proposals/:id/recompute", handlers.RecomputeProposal(proposalSvc))
	auth.PUT("/api/proposals/:id/machines", handlers.OverrideProposalMachines(proposalSvc))
	auth.GET("/api/proposals/:id/pdf", handlers.GenerateProposalPDF(proposalSvc))
	auth.DELETE("/api/proposals/:id", handlers.DeleteProposal(proposalSvc))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil || portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT environment variable: %s", port)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
