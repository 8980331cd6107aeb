package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/Demian-Yim/Flow-Up/internal/config"
	"github.com/Demian-Yim/Flow-Up/internal/database"
	"github.com/Demian-Yim/Flow-Up/internal/handlers"
	"github.com/Demian-Yim/Flow-Up/internal/middleware"
	"github.com/Demian-Yim/Flow-Up/internal/models"
	"github.com/Demian-Yim/Flow-Up/internal/services"
	"github.com/Demian-Yim/Flow-Up/internal/state"
	"github.com/Demian-Yim/Flow-Up/internal/store"
	"github.com/Demian-Yim/Flow-Up/internal/ws"

	_ "github.com/Demian-Yim/Flow-Up/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Flow-Up Workshop API
// @version         1.0
// @description     Live workshop session coordinator: shared state sync for attendance, teams, scores, meals, feedback and networking
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	var docStore store.Store
	switch cfg.StoreBackend {
	case "memory":
		log.Println("using in-memory document store")
		docStore = store.NewMemory()
	default:
		db := database.Connect(cfg)
		database.AutoMigrate(db)
		pollSec, _ := strconv.Atoi(cfg.PollInterval)
		if pollSec <= 0 {
			pollSec = 2
		}
		docStore = store.NewPostgres(db, time.Duration(pollSec)*time.Second)
	}

	genService := services.NewGenerateService(cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel)
	if !genService.IsAvailable() {
		log.Println("AI_API_KEY not set, generation disabled, serving canned content")
	}
	matchService := services.NewMatchService(genService)

	authService, err := services.NewAuthService(cfg.AdminPassphrase, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("failed to init auth: %v", err)
	}

	hub := ws.NewHub()

	flushMs, _ := strconv.Atoi(cfg.FlushWindow)
	if flushMs <= 0 {
		flushMs = 1000
	}
	sched := state.NewScheduler(time.Duration(flushMs)*time.Millisecond, func(ctx context.Context, snap *models.Snapshot) error {
		return docStore.Write(ctx, cfg.WorkshopID, snap)
	})
	defer sched.Flush()

	session := state.NewSession(state.RoleAdmin,
		state.WithScheduler(sched),
		state.WithMatcher(matchService),
		state.WithMenuProvider(genService),
		state.WithOnChange(func(snap *models.Snapshot) {
			hub.Broadcast(cfg.WorkshopID, ws.WSMessage{Type: "snapshot", Data: snap})
		}),
	)

	ctx := context.Background()
	unsubscribe, err := docStore.Subscribe(ctx, cfg.WorkshopID, func(snap *models.Snapshot) {
		session.Reconcile(ctx, snap)
	})
	if err != nil {
		log.Fatalf("failed to subscribe to document store: %v", err)
	}
	defer unsubscribe()

	authHandler := handlers.NewAuthHandler(authService)
	workshopHandler := handlers.NewWorkshopHandler(session)
	teamHandler := handlers.NewTeamHandler(session, genService)
	mealHandler := handlers.NewMealHandler(session)
	feedbackHandler := handlers.NewFeedbackHandler(session)
	networkingHandler := handlers.NewNetworkingHandler(session)
	documentHandler := handlers.NewDocumentHandler(session, genService)
	wsHandler := handlers.NewWSHandler(hub, cfg.WorkshopID)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/admin", authHandler.AdminLogin)
			auth.POST("/attendee", authHandler.AttendeeToken)
		}

		open := api.Group("")
		open.Use(middleware.JWTAuth(authService))
		{
			open.GET("/state", workshopHandler.GetState)
			open.POST("/participants", workshopHandler.CheckIn)
			open.POST("/introductions", workshopHandler.SaveIntroduction)
			open.POST("/introductions/generate", documentHandler.GenerateIntroductions)
			open.POST("/selections", mealHandler.SelectMeal)
			open.POST("/feedback", feedbackHandler.SubmitFeedback)
			open.POST("/networking/interests", networkingHandler.SubmitInterest)
			open.GET("/networking/matches/:participantId", networkingHandler.GetMatches)
			open.POST("/motivation", documentHandler.Motivation)
		}

		admin := api.Group("")
		admin.Use(middleware.JWTAuth(authService), middleware.RequireAdmin())
		{
			admin.DELETE("/participants/:id", workshopHandler.RemoveParticipant)
			admin.PUT("/teams", teamHandler.UpdateTeams)
			admin.POST("/teams/move", teamHandler.MoveParticipant)
			admin.POST("/teams/names", teamHandler.SuggestTeamNames)
			admin.POST("/scores/:teamId", teamHandler.UpdateScore)
			admin.POST("/menu/fetch", mealHandler.FetchMenu)
			admin.POST("/meals", mealHandler.AddMeal)
			admin.PUT("/meals/:id", mealHandler.UpdateMeal)
			admin.DELETE("/meals/:id", mealHandler.DeleteMeal)
			admin.POST("/feedback/:id/toggle", feedbackHandler.ToggleAddressed)
			admin.PUT("/notice", documentHandler.UpdateNotice)
			admin.POST("/ambiance/generate", documentHandler.GeneratePlaylist)
			admin.POST("/summary/generate", documentHandler.GenerateSummary)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
