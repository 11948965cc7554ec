package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/minhvu/go-taiga-tracker/internal/api/handlers"
	"github.com/minhvu/go-taiga-tracker/internal/api/middleware"
	"github.com/minhvu/go-taiga-tracker/internal/config"
	"github.com/minhvu/go-taiga-tracker/internal/repository"
	"github.com/minhvu/go-taiga-tracker/internal/service"
)

func main() {

	// LOAD ENV
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed load config:", err)
	}

	// INIT DB
	repo, err := repository.NewPostgresRepoFromConfig(&repository.DBConfig{
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Name: cfg.DBName,
	})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	// MIGRATIONS
	if err := repo.RunMigrations(context.Background()); err != nil {
		log.Fatal("migration error:", err)
	}

	// ADMIN SEED
	hashed, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err := repo.UpsertAdmin(context.Background(), cfg.AdminUsername, string(hashed)); err != nil {
		log.Println("failed seeding admin:", err)
	} else {
		log.Println("admin seeded OK")
	}

	// SERVICES
	taigaService := service.NewTaigaService(repo, cfg.TaigaBaseURL, cfg.TaigaEmail, cfg.TaigaPassword, cfg.AllowedUserIDs)
	dashboardService := service.NewDashboardService(repo, cfg.AllowedUserIDs, cfg.PendingTaskIDs, cfg.WeeklyGoal)

	// HANDLERS
	authHandler := handlers.NewAuthHandler(repo, cfg.JWTSecret)
	syncHandler := handlers.NewSyncHandler(taigaService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	memberHandler := handlers.NewMemberHandler(repo)

	// ROUTER
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	api := r.Group("/api/v1")

	// AUTH ROUTES
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// SYNC ROUTES
	api.POST("/sync/taiga", middleware.Auth(cfg.JWTSecret), syncHandler.SyncTaiga)

	// DATA ROUTES
	api.GET("/tasks", memberHandler.ListTasks)
	api.GET("/members", memberHandler.ListMembers)

	// DASHBOARD ROUTES
	dash := api.Group("/dashboard")
	{
		dash.GET("/weekly", dashboardHandler.Weekly)
		dash.GET("/weeks", dashboardHandler.Weeks)
		dash.GET("/ranking", dashboardHandler.Ranking)
		dash.GET("/yearly", dashboardHandler.Yearly)
		dash.GET("/team", dashboardHandler.Team)
	}

	// START SERVER
	log.Println("Server running on port:", cfg.Port)
	r.Run(":" + cfg.Port)
}
